package projeto

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, p *Projeto) error
	BuscarPorID(db *gorm.DB, id uint) (*Projeto, error)
	ListarPorUsuario(db *gorm.DB, usuarioID uint) ([]Projeto, error)
	ContarPorUsuario(db *gorm.DB, usuarioID uint) (int64, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Projeto) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Projeto) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Projeto, error) {
	var p Projeto
	err := db.Preload("Equipe").
		Preload("Pagamentos").
		Preload("Despesas").
		First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID uint) ([]Projeto, error) {
	var projetos []Projeto
	err := db.Where("usuario_id = ?", usuarioID).Find(&projetos).Error
	return projetos, err
}

func (r *repositoryImpl) ContarPorUsuario(db *gorm.DB, usuarioID uint) (int64, error) {
	var total int64
	err := db.Model(&Projeto{}).Where("usuario_id = ?", usuarioID).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Projeto) error {
	return db.Model(&Projeto{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nome":                novosDados.Nome,
		"cliente":             novosDados.Cliente,
		"orcamento_total":     novosDados.OrcamentoTotal,
		"estrutura_pagamento": novosDados.EstruturaPagamento,
		"status":              novosDados.Status,
	}).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Projeto{}, id).Error
}
