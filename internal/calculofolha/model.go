// Package calculofolha concentra o cálculo de folha dos prestadores:
// valor devido por atribuição, soma de pagamentos por par projeto/prestador,
// reconciliação de saldo e resumos por prestador, por projeto e da agência.
// Todas as funções são puras: recebem snapshots em memória e não fazem I/O.
package calculofolha

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoPagamento define como o valor devido de um membro é derivado.
type TipoPagamento string

const (
	// TipoValorFixo usa ValorAcordado diretamente.
	TipoValorFixo TipoPagamento = "ValorFixo"
	// TipoPercentual usa Percentual sobre o orçamento do projeto.
	TipoPercentual TipoPagamento = "Percentual"
)

// Status derivado da reconciliação. Vocabulário canônico único;
// rótulos legados ("Parcialmente Pago" etc.) são adaptados na borda.
const (
	StatusPendente = "Pendente"
	StatusParcial  = "Parcial"
	StatusPago     = "Pago"
)

// Epsilon é a menor unidade de moeda (um centavo). Saldos abaixo de
// Epsilon contam como quitados.
var Epsilon = decimal.New(1, -2)

// Projeto é o snapshot mínimo de um projeto para fins de cálculo.
type Projeto struct {
	ID             uint
	OrcamentoTotal decimal.Decimal
}

// Membro é o snapshot de uma atribuição prestador↔projeto.
// Exatamente um de ValorAcordado/Percentual dirige o cálculo,
// selecionado por TipoPagamento; o outro campo é ignorado.
type Membro struct {
	ID          uint
	ProjetoID   uint
	PrestadorID uint
	Tipo        TipoPagamento
	// ValorAcordado vale quando Tipo == TipoValorFixo.
	ValorAcordado decimal.Decimal
	// Percentual (0–100) vale quando Tipo == TipoPercentual.
	Percentual decimal.Decimal
}

// Pagamento é o snapshot de um pagamento registrado.
type Pagamento struct {
	ID          uint
	ProjetoID   uint
	PrestadorID uint
	Valor       decimal.Decimal
	Data        time.Time
}

// Despesa é o snapshot de uma despesa de projeto.
type Despesa struct {
	ID        uint
	ProjetoID uint
	Valor     decimal.Decimal
	Data      time.Time
}

// Par identifica o eixo de agregação projeto/prestador.
type Par struct {
	ProjetoID   uint
	PrestadorID uint
}

// indexarProjetos monta o índice ID→Projeto usado pelos resumos.
func indexarProjetos(projetos []Projeto) map[uint]*Projeto {
	idx := make(map[uint]*Projeto, len(projetos))
	for i := range projetos {
		idx[projetos[i].ID] = &projetos[i]
	}
	return idx
}
