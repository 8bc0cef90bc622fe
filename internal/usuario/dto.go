package usuario

import (
	"github.com/CastorDigital/api-folha/internal/assinatura"
	"github.com/CastorDigital/api-folha/internal/calculofolha"
)

// ResumoUsuarioDTO é a visão consolidada do dono de agência: dados
// cadastrais, plano e os totais da folha.
type ResumoUsuarioDTO struct {
	ID               uint                       `json:"id"`
	Nome             string                     `json:"nome"`
	Sobrenome        string                     `json:"sobrenome"`
	NomeAgencia      string                     `json:"nomeAgencia"`
	Email            string                     `json:"email"`
	Plano            string                     `json:"plano"`
	TotalProjetos    int64                      `json:"totalProjetos"`
	TotalPrestadores int64                      `json:"totalPrestadores"`
	Folha            calculofolha.ResumoAgencia `json:"folha"`
}

// MontarResumoUsuarioDTO consolida os dados já carregados.
func MontarResumoUsuarioDTO(u Usuario, ass *assinatura.Assinatura, folha calculofolha.ResumoAgencia, totalProjetos, totalPrestadores int64) ResumoUsuarioDTO {
	plano := assinatura.PlanoGratuito
	if ass != nil {
		plano = ass.Plano
	}
	return ResumoUsuarioDTO{
		ID:               u.ID,
		Nome:             u.Nome,
		Sobrenome:        u.Sobrenome,
		NomeAgencia:      u.NomeAgencia,
		Email:            u.Email,
		Plano:            plano,
		TotalProjetos:    totalProjetos,
		TotalPrestadores: totalPrestadores,
		Folha:            folha,
	}
}
