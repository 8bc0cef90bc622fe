package holerite

import "gorm.io/gorm"

// Repository encapsula operações de banco para Holerite
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(h *Holerite) error {
	return r.DB.Create(h).Error
}

func (r *Repository) FindByID(id uint) (*Holerite, error) {
	var h Holerite
	if err := r.DB.First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// ListByUsuario retorna os holerites emitidos pelo dono da agência,
// mais recentes primeiro.
func (r *Repository) ListByUsuario(usuarioID uint) ([]Holerite, error) {
	var list []Holerite
	err := r.DB.Where("usuario_id = ?", usuarioID).Order("created_at DESC").Find(&list).Error
	return list, err
}

// ListByPrestador retorna os holerites de um prestador.
func (r *Repository) ListByPrestador(prestadorID uint) ([]Holerite, error) {
	var list []Holerite
	err := r.DB.Where("prestador_id = ?", prestadorID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *Repository) Delete(h *Holerite) error {
	return r.DB.Delete(h).Error
}

// ProjetoDono devolve o usuário dono do projeto.
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
