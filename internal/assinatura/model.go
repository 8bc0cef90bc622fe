package assinatura

import (
	"time"

	"gorm.io/gorm"
)

// Planos disponíveis e seus limites de projetos ativos.
const (
	PlanoGratuito     = "Gratuito"
	PlanoProfissional = "Profissional"
	PlanoAgencia      = "Agencia"
)

const (
	StatusAtiva        = "Ativa"
	StatusInadimplente = "Inadimplente"
	StatusCancelada    = "Cancelada"
)

// Assinatura é o plano de um dono de agência. Uma por usuário.
type Assinatura struct {
	gorm.Model
	UsuarioID uint      `gorm:"not null;uniqueIndex" json:"usuarioId"`
	Plano     string    `gorm:"size:50;not null;default:'Gratuito'" json:"plano"`
	Status    string    `gorm:"size:50;not null;default:'Ativa'" json:"status"`
	RenovaEm  time.Time `json:"renovaEm"`
}

// LimiteProjetos devolve o teto de projetos do plano; -1 significa
// ilimitado. Plano desconhecido cai no limite do Gratuito.
func LimiteProjetos(plano string) int {
	switch plano {
	case PlanoProfissional:
		return 25
	case PlanoAgencia:
		return -1
	default:
		return 3
	}
}

// PermiteNovoProjeto decide se a assinatura comporta mais um projeto
// dado o total atual. Assinaturas não ativas não criam projetos.
func PermiteNovoProjeto(a *Assinatura, projetosAtuais int64) bool {
	plano := PlanoGratuito
	if a != nil {
		if a.Status != StatusAtiva {
			return false
		}
		plano = a.Plano
	}
	limite := LimiteProjetos(plano)
	return limite < 0 || projetosAtuais < int64(limite)
}
