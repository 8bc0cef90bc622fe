package equipe

import "gorm.io/gorm"

// Repository encapsula operações de banco para MembroEquipe
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *MembroEquipe) error {
	return r.DB.Create(m).Error
}

func (r *Repository) FindByID(id uint) (*MembroEquipe, error) {
	var m MembroEquipe
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByProjeto retorna a equipe de um projeto.
func (r *Repository) ListByProjeto(projetoID uint) ([]MembroEquipe, error) {
	var list []MembroEquipe
	err := r.DB.Where("projeto_id = ?", projetoID).Find(&list).Error
	return list, err
}

// ListByPrestador retorna todas as atribuições de um prestador.
func (r *Repository) ListByPrestador(prestadorID uint) ([]MembroEquipe, error) {
	var list []MembroEquipe
	err := r.DB.Where("prestador_id = ?", prestadorID).Find(&list).Error
	return list, err
}

// ListByUsuario retorna todas as atribuições dos projetos de um usuário.
func (r *Repository) ListByUsuario(usuarioID uint) ([]MembroEquipe, error) {
	var list []MembroEquipe
	err := r.DB.
		Joins("JOIN projetos ON projetos.id = membro_equipes.projeto_id").
		Where("projetos.usuario_id = ? AND projetos.deleted_at IS NULL", usuarioID).
		Find(&list).Error
	return list, err
}

func (r *Repository) Update(m *MembroEquipe) error {
	return r.DB.Save(m).Error
}

// UpdateStatus atualiza apenas o rótulo de status persistido.
func (r *Repository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&MembroEquipe{}).Where("id = ?", id).
		Update("status_pagamento", status).Error
}

func (r *Repository) Delete(m *MembroEquipe) error {
	return r.DB.Delete(m).Error
}

// ProjetoDono devolve o usuário dono do projeto, para checagem de
// posse sem importar o pacote projeto.
func (r *Repository) ProjetoDono(projetoID uint) (uint, error) {
	var usuarioID uint
	err := r.DB.Table("projetos").
		Select("usuario_id").
		Where("id = ? AND deleted_at IS NULL", projetoID).
		Scan(&usuarioID).Error
	return usuarioID, err
}
