package calculofolha

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValorDevido_ValorFixoIgnoraOrcamento(t *testing.T) {
	m := Membro{ProjetoID: 1, PrestadorID: 10, Tipo: TipoValorFixo, ValorAcordado: dec("500000")}

	for _, orcamento := range []string{"0", "1000000", "250"} {
		p := &Projeto{ID: 1, OrcamentoTotal: dec(orcamento)}
		if got := ValorDevido(m, p); !got.Equal(dec("500000")) {
			t.Fatalf("orcamento %s: devido = %s, esperava 500000", orcamento, got)
		}
	}
}

func TestValorDevido_PercentualSobreOrcamento(t *testing.T) {
	m := Membro{ProjetoID: 1, PrestadorID: 10, Tipo: TipoPercentual, Percentual: dec("20")}
	p := &Projeto{ID: 1, OrcamentoTotal: dec("1000000")}

	if got := ValorDevido(m, p); !got.Equal(dec("200000")) {
		t.Fatalf("devido = %s, esperava 200000", got)
	}
}

func TestValorDevido_ProjetoAusenteValeZero(t *testing.T) {
	m := Membro{ProjetoID: 99, PrestadorID: 10, Tipo: TipoPercentual, Percentual: dec("50")}

	if got := ValorDevido(m, nil); !got.IsZero() {
		t.Fatalf("atribuição órfã: devido = %s, esperava 0", got)
	}
}

func TestValorDevido_PercentualForaDaFaixaPropaga(t *testing.T) {
	// validação de faixa é da camada de entrada; aqui a fórmula é
	// aplicada como está
	p := &Projeto{ID: 1, OrcamentoTotal: dec("1000")}

	acima := Membro{ProjetoID: 1, Tipo: TipoPercentual, Percentual: dec("150")}
	if got := ValorDevido(acima, p); !got.Equal(dec("1500")) {
		t.Fatalf("percentual 150: devido = %s, esperava 1500", got)
	}

	negativo := Membro{ProjetoID: 1, Tipo: TipoPercentual, Percentual: dec("-10")}
	if got := ValorDevido(negativo, p); !got.Equal(dec("-100")) {
		t.Fatalf("percentual -10: devido = %s, esperava -100", got)
	}
}

func TestValorDevido_TipoDesconhecidoValeZero(t *testing.T) {
	m := Membro{ProjetoID: 1, Tipo: TipoPagamento("Diaria"), ValorAcordado: dec("100")}
	p := &Projeto{ID: 1, OrcamentoTotal: dec("1000")}

	if got := ValorDevido(m, p); !got.IsZero() {
		t.Fatalf("tipo desconhecido: devido = %s, esperava 0", got)
	}
}
