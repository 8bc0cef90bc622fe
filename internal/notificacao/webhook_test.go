package notificacao

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEnviarAlertaPagamentoExcedente(t *testing.T) {
	recebido := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recebido <- body
	}))
	defer srv.Close()

	t.Setenv("ALERTA_WEBHOOK_URL", srv.URL)

	EnviarAlertaPagamentoExcedente(7, 3, decimal.RequireFromString("-150.50"))

	select {
	case body := <-recebido:
		var payload map[string]interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("payload inválido: %v", err)
		}
		if payload["excedente"] != "150.50" {
			t.Errorf("excedente = %v, esperava 150.50", payload["excedente"])
		}
		if payload["projetoId"] != float64(7) || payload["prestadorId"] != float64(3) {
			t.Errorf("identificadores errados no payload: %v", payload)
		}
	default:
		t.Fatal("webhook não foi chamado")
	}
}

func TestEnviarAlertaSemURLNaoFalha(t *testing.T) {
	t.Setenv("ALERTA_WEBHOOK_URL", "")
	EnviarAlertaPagamentoExcedente(1, 1, decimal.NewFromInt(-10))
}
