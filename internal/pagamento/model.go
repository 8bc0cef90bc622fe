package pagamento

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pagamento é um repasse registrado para um prestador em um projeto.
// Registros se acumulam: dois pagamentos idênticos são duas transações
// reais, e só somem por exclusão explícita.
type Pagamento struct {
	gorm.Model
	ProjetoID     uint            `gorm:"not null;index" json:"projetoId"`
	PrestadorID   uint            `gorm:"not null;index" json:"prestadorId"`
	Valor         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"valor"`
	DataPagamento time.Time       `gorm:"not null" json:"dataPagamento"`
	Metodo        string          `gorm:"size:50" json:"metodo"` // ex: "Transferência", "Pix", "Dinheiro"
	Referencia    string          `gorm:"size:64" json:"referencia"`
}

