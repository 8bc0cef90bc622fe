package projeto

import (
	"github.com/CastorDigital/api-folha/internal/despesa"
	"github.com/CastorDigital/api-folha/internal/equipe"
	"github.com/CastorDigital/api-folha/internal/pagamento"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Estruturas de pagamento aceitas pelo cliente do projeto.
const (
	EstruturaPagamentoUnico = "PagamentoUnico"
	EstruturaMarcos         = "Marcos"
)

// Status de ciclo de vida do projeto.
const (
	StatusAtivo    = "Ativo"
	StatusConcluido = "Concluido"
	StatusEmEspera = "EmEspera"
)

// Projeto é um trabalho fechado com um cliente. O orçamento total é a
// base do cálculo de percentuais da equipe e é tratado como entrada
// imutável pelos resumos.
type Projeto struct {
	gorm.Model
	UsuarioID          uint            `gorm:"not null;index" json:"usuarioId"`
	Nome               string          `gorm:"size:255;not null" json:"nome"`
	Cliente            string          `gorm:"size:255" json:"cliente"`
	OrcamentoTotal     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"orcamentoTotal"`
	EstruturaPagamento string          `gorm:"size:30;not null;default:'PagamentoUnico'" json:"estruturaPagamento"`
	Status             string          `gorm:"size:20;not null;default:'Ativo';index" json:"status"`

	Equipe     []equipe.MembroEquipe `gorm:"foreignKey:ProjetoID;constraint:OnDelete:CASCADE" json:"equipe,omitempty"`
	Pagamentos []pagamento.Pagamento `gorm:"foreignKey:ProjetoID;constraint:OnDelete:CASCADE" json:"pagamentos,omitempty"`
	Despesas   []despesa.Despesa     `gorm:"foreignKey:ProjetoID;constraint:OnDelete:CASCADE" json:"despesas,omitempty"`
}

