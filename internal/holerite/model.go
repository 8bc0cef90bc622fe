package holerite

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Holerite é a fotografia da reconciliação de um par projeto/prestador
// no momento da emissão. Os valores não são recalculados depois:
// pagamentos posteriores pedem um novo holerite.
type Holerite struct {
	gorm.Model
	UsuarioID     uint            `gorm:"not null;index" json:"usuarioId"`
	ProjetoID     uint            `gorm:"not null;index" json:"projetoId"`
	PrestadorID   uint            `gorm:"not null;index" json:"prestadorId"`
	Numero        string          `gorm:"size:36;uniqueIndex" json:"numero"`
	PeriodoInicio time.Time       `json:"periodoInicio"`
	PeriodoFim    time.Time       `json:"periodoFim"`
	ValorDevido   decimal.Decimal `gorm:"type:decimal(18,2)" json:"valorDevido"`
	TotalPago     decimal.Decimal `gorm:"type:decimal(18,2)" json:"totalPago"`
	// SaldoDevedor guarda o saldo bruto (negativo quando houve
	// pagamento a maior); SaldoCobravel é o valor que de fato se
	// apresenta ao prestador, nunca abaixo de zero.
	SaldoDevedor  decimal.Decimal `gorm:"type:decimal(18,2)" json:"saldoDevedor"`
	SaldoCobravel decimal.Decimal `gorm:"type:decimal(18,2)" json:"saldoCobravel"`
	Status        string          `gorm:"size:20" json:"status"`
}

