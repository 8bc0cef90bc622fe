package despesa

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Despesa é um custo de projeto (software, equipamento, deslocamento).
// Entra apenas nos resumos de lucro, nunca no valor devido a prestador.
type Despesa struct {
	gorm.Model
	ProjetoID   uint            `gorm:"not null;index" json:"projetoId"`
	Categoria   string          `gorm:"size:100;not null" json:"categoria"`
	Valor       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"valor"`
	DataDespesa time.Time       `gorm:"not null" json:"dataDespesa"`
	Observacao  string          `gorm:"size:255" json:"observacao"`
}

