package equipe

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de pagamento de um membro de equipe.
const (
	TipoValorFixo  = "ValorFixo"
	TipoPercentual = "Percentual"
)

// MembroEquipe vincula um prestador a um projeto com o acerto de
// pagamento. Exatamente um de ValorAcordado/Percentual dirige o valor
// devido, conforme TipoPagamento; o outro campo fica guardado mas não
// entra no cálculo.
//
// StatusPagamento é um rótulo livre ("Pendente", "Parcial", "Pago"):
// o cálculo deriva o status correto mas nunca sobrescreve este campo
// sozinho — ver SincronizarStatus no handler.
type MembroEquipe struct {
	gorm.Model
	ProjetoID       uint            `gorm:"not null;index" json:"projetoId"`
	PrestadorID     uint            `gorm:"not null;index" json:"prestadorId"`
	TipoPagamento   string          `gorm:"size:20;not null" json:"tipoPagamento"`
	ValorAcordado   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"valorAcordado"`
	Percentual      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"percentual"`
	StatusPagamento string          `gorm:"size:20;not null;default:'Pendente'" json:"statusPagamento"`
}

