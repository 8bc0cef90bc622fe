package usuario

import (
	"github.com/CastorDigital/api-folha/internal/assinatura"
	"github.com/CastorDigital/api-folha/internal/prestador"
	"github.com/CastorDigital/api-folha/internal/projeto"
	"gorm.io/gorm"
)

// Usuario é o dono de agência: quem cadastra projetos, prestadores e
// pagamentos. IsAdmin marca a conta do console administrativo.
type Usuario struct {
	gorm.Model
	Nome                  string `json:"nome"`
	Sobrenome             string `json:"sobrenome"`
	NomeAgencia           string `json:"nomeAgencia"`
	CNPJ                  string `json:"cnpj" gorm:"unique"`
	Email                 string `json:"email" gorm:"unique"`
	Telefone              string `json:"telefone"`
	Senha                 string `json:"-"`
	PrecisaRedefinirSenha bool   `json:"-"`
	IsAdmin               bool   `json:"isAdmin" gorm:"default:false"`

	Projetos    []projeto.Projeto      `gorm:"foreignKey:UsuarioID" json:"projetos,omitempty"`
	Prestadores []prestador.Prestador  `gorm:"foreignKey:UsuarioID" json:"prestadores,omitempty"`
	Assinatura  *assinatura.Assinatura `gorm:"foreignKey:UsuarioID" json:"assinatura,omitempty"`
}

