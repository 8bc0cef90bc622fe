package prestador

import "gorm.io/gorm"

// Prestador é o contratado que recebe pela participação em projetos.
// Não tem login próprio: é um cadastro do dono de agência.
type Prestador struct {
	gorm.Model
	UsuarioID uint   `gorm:"not null;index" json:"usuarioId"`
	Nome      string `gorm:"size:100;not null" json:"nome"`
	Sobrenome string `gorm:"size:100" json:"sobrenome"`
	Email     string `gorm:"size:100" json:"email"`
	Telefone  string `gorm:"size:20" json:"telefone"`
	Funcao    string `gorm:"size:100" json:"funcao"` // ex: "Designer", "Dev Backend"
}

// TableName evita a pluralização em inglês do GORM.
func (Prestador) TableName() string {
	return "prestadores"
}

