package prestador

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, p *Prestador) error
	BuscarPorID(db *gorm.DB, id uint) (*Prestador, error)
	ListarPorUsuario(db *gorm.DB, usuarioID uint) ([]Prestador, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Prestador) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Prestador) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Prestador, error) {
	var p Prestador
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID uint) ([]Prestador, error) {
	var prestadores []Prestador
	err := db.Where("usuario_id = ?", usuarioID).Find(&prestadores).Error
	return prestadores, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Prestador) error {
	return db.Model(&Prestador{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nome":      novosDados.Nome,
		"sobrenome": novosDados.Sobrenome,
		"email":     novosDados.Email,
		"telefone":  novosDados.Telefone,
		"funcao":    novosDados.Funcao,
	}).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Prestador{}, id).Error
}
