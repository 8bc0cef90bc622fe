package assinatura

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Assinatura
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorUsuario devolve a assinatura do usuário, se existir.
func (r *Repository) BuscarPorUsuario(usuarioID uint) (*Assinatura, error) {
	var a Assinatura
	if err := r.DB.Where("usuario_id = ?", usuarioID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GarantirPadrao cria a assinatura Gratuito/Ativa se o usuário ainda
// não tiver nenhuma.
func (r *Repository) GarantirPadrao(usuarioID uint) (*Assinatura, error) {
	if a, err := r.BuscarPorUsuario(usuarioID); err == nil {
		return a, nil
	}
	a := Assinatura{
		UsuarioID: usuarioID,
		Plano:     PlanoGratuito,
		Status:    StatusAtiva,
		RenovaEm:  time.Now().AddDate(0, 1, 0),
	}
	if err := r.DB.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// AlterarPlano troca plano e status (usado pelo console administrativo).
func (r *Repository) AlterarPlano(usuarioID uint, plano, status string) error {
	return r.DB.Model(&Assinatura{}).Where("usuario_id = ?", usuarioID).Updates(map[string]interface{}{
		"plano":  plano,
		"status": status,
	}).Error
}
