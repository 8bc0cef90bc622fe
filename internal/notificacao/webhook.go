package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"

	"github.com/shopspring/decimal"

	"github.com/CastorDigital/api-folha/internal/utils"
)

// EnviarAlertaPagamentoExcedente avisa o webhook configurado que um
// prestador recebeu mais do que o valor devido no projeto. Sem
// ALERTA_WEBHOOK_URL no ambiente, nada é enviado.
func EnviarAlertaPagamentoExcedente(projetoID, prestadorID uint, saldo decimal.Decimal) {
	url := os.Getenv("ALERTA_WEBHOOK_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"mensagem":    "Alerta: pagamento excede o valor devido ao prestador",
		"projetoId":   projetoID,
		"prestadorId": prestadorID,
		"excedente":   saldo.Neg().StringFixed(2),
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		utils.Logger.Error().Err(err).Msg("Erro ao enviar webhook de alerta")
		return
	}
	defer resp.Body.Close()
}
