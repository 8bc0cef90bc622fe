package despesa

import "gorm.io/gorm"

// Repository encapsula operações de banco para Despesa
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(d *Despesa) error {
	return r.DB.Create(d).Error
}

func (r *Repository) FindByID(id uint) (*Despesa, error) {
	var d Despesa
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) ListByProjeto(projetoID uint) ([]Despesa, error) {
	var list []Despesa
	err := r.DB.Where("projeto_id = ?", projetoID).Order("data_despesa").Find(&list).Error
	return list, err
}

func (r *Repository) Update(d *Despesa) error {
	return r.DB.Save(d).Error
}

func (r *Repository) Delete(d *Despesa) error {
	return r.DB.Delete(d).Error
}

// ProjetoDono devolve o usuário dono do projeto da despesa.
func (r *Repository) ProjetoDono(projetoID uint) (uint, error) {
	var usuarioID uint
	err := r.DB.Table("projetos").
		Select("usuario_id").
		Where("id = ? AND deleted_at IS NULL", projetoID).
		Scan(&usuarioID).Error
	return usuarioID, err
}
