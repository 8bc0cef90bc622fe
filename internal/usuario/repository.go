package usuario

import "gorm.io/gorm"

type Repository interface {
	BuscarPorEmailOuCNPJ(db *gorm.DB, valor string) (*Usuario, error)
	Salvar(db *gorm.DB, u *Usuario) error
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Usuario) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Busca primeiro por e-mail, depois por CNPJ, para evitar ambiguidade
func (r *repositoryImpl) BuscarPorEmailOuCNPJ(db *gorm.DB, valor string) (*Usuario, error) {
	var u Usuario

	if err := db.Where("email = ?", valor).First(&u).Error; err == nil {
		return &u, nil
	}
	if err := db.Where("cnpj = ?", valor).First(&u).Error; err == nil {
		return &u, nil
	}

	return nil, gorm.ErrRecordNotFound
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	err := db.Preload("Assinatura").First(&u, id).Error
	return &u, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Preload("Assinatura").Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Usuario) error {
	return db.Model(&Usuario{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nome":         novosDados.Nome,
		"sobrenome":    novosDados.Sobrenome,
		"nome_agencia": novosDados.NomeAgencia,
		"telefone":     novosDados.Telefone,
	}).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Usuario{}, id).Error
}
