package pagamento

import "gorm.io/gorm"

// Repository encapsula operações de banco para Pagamento
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Pagamento) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByID(id uint) (*Pagamento, error) {
	var p Pagamento
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByProjeto retorna os pagamentos de um projeto.
func (r *Repository) ListByProjeto(projetoID uint) ([]Pagamento, error) {
	var list []Pagamento
	err := r.DB.Where("projeto_id = ?", projetoID).Order("data_pagamento").Find(&list).Error
	return list, err
}

// ListByPrestador retorna o histórico de um prestador em todos os
// projetos.
func (r *Repository) ListByPrestador(prestadorID uint) ([]Pagamento, error) {
	var list []Pagamento
	err := r.DB.Where("prestador_id = ?", prestadorID).Order("data_pagamento").Find(&list).Error
	return list, err
}

// ListByUsuario retorna os pagamentos de todos os projetos do usuário.
func (r *Repository) ListByUsuario(usuarioID uint) ([]Pagamento, error) {
	var list []Pagamento
	err := r.DB.
		Joins("JOIN projetos ON projetos.id = pagamentos.projeto_id").
		Where("projetos.usuario_id = ? AND projetos.deleted_at IS NULL", usuarioID).
		Find(&list).Error
	return list, err
}

func (r *Repository) Update(p *Pagamento) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Delete(p *Pagamento) error {
	return r.DB.Delete(p).Error
}

// ProjetoDono devolve o usuário dono do projeto do pagamento.
func (r *Repository) ProjetoDono(projetoID uint) (uint, error) {
	var usuarioID uint
	err := r.DB.Table("projetos").
		Select("usuario_id").
		Where("id = ? AND deleted_at IS NULL", projetoID).
		Scan(&usuarioID).Error
	return usuarioID, err
}

// PrestadorDono devolve o usuário dono do cadastro do prestador.
func (r *Repository) PrestadorDono(prestadorID uint) (uint, error) {
	var usuarioID uint
	err := r.DB.Table("prestadores").
		Select("usuario_id").
		Where("id = ? AND deleted_at IS NULL", prestadorID).
		Scan(&usuarioID).Error
	return usuarioID, err
}
