package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/CastorDigital/api-folha/internal/assinatura"
	"github.com/CastorDigital/api-folha/internal/auth"
	"github.com/CastorDigital/api-folha/internal/calculofolha"
	"github.com/CastorDigital/api-folha/internal/relatorio"
	"github.com/CastorDigital/api-folha/internal/utils"
)

// request DTOs
type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

type createUsuarioRequest struct {
	Nome        string `json:"nome"`
	Sobrenome   string `json:"sobrenome"`
	NomeAgencia string `json:"nomeAgencia"`
	CNPJ        string `json:"cnpj"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	Senha       string `json:"senha"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Assinaturas *assinatura.Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Assinaturas: assinatura.NewRepository(db),
	}
}

// Login valida credenciais, devolve o access token e planta o cookie
// de refresh
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// Busca usuário por email ou CNPJ
	u, err := h.Repository.BuscarPorEmailOuCNPJ(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(u.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.IssueTokensOnLogin(h.DB, w, u.ID, u.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Criar cadastra novo dono de agência (livre de autenticação); a
// assinatura Gratuita é criada junto
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req createUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		http.Error(w, "nome, email e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:        req.Nome,
		Sobrenome:   req.Sobrenome,
		NomeAgencia: req.NomeAgencia,
		CNPJ:        req.CNPJ,
		Email:       req.Email,
		Telefone:    req.Telefone,
		Senha:       hash,
	}

	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	if _, err := h.Assinaturas.GarantirPadrao(u.ID); err != nil {
		utils.Logger.Error().Err(err).Uint("usuarioId", u.ID).Msg("Erro ao criar assinatura padrão")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}

// Listar retorna todos (admin) ou apenas o próprio registro
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)

	if isAdmin {
		usuarios, err := h.Repository.ListarTodos(h.DB)
		if err != nil {
			http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(usuarios)
		return
	}

	// não-admin vê apenas o próprio
	u, err := h.Repository.BuscarPorID(h.DB, usuarioID)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode([]Usuario{*u})
}

// BuscarPorID retorna um usuário pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !isAdmin && uint(id) != usuarioID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}

// Atualizar altera dados cadastrais de um usuário existente
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !isAdmin && uint(id) != usuarioID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dados Usuario
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("usuário atualizado com sucesso"))
}

// Deletar remove um usuário
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !isAdmin && uint(id) != usuarioID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("usuário excluído com sucesso"))
}

type alterarSenhaRequest struct {
	SenhaAtual string `json:"senhaAtual"`
	NovaSenha  string `json:"novaSenha"`
}

// AlterarSenha troca a senha do próprio usuário e limpa a flag de
// redefinição obrigatória.
func (h *Handler) AlterarSenha(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var req alterarSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.NovaSenha == "" {
		http.Error(w, "o campo 'novaSenha' é obrigatório", http.StatusBadRequest)
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, usuarioID)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	if !utils.VerificarSenha(u.Senha, req.SenhaAtual) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	hash, err := utils.HashSenha(req.NovaSenha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	if err := h.DB.Model(&Usuario{}).Where("id = ?", usuarioID).Updates(map[string]interface{}{
		"senha":                   hash,
		"precisa_redefinir_senha": false,
	}).Error; err != nil {
		http.Error(w, "erro ao alterar senha", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("senha alterada com sucesso"))
}

// Resumo constrói e retorna o DTO consolidado do usuário
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)

	idParam := usuarioID
	if isAdmin {
		if idStr := mux.Vars(r)["id"]; idStr != "" {
			if i, err := strconv.Atoi(idStr); err == nil {
				idParam = uint(i)
			}
		}
	}

	u, err := h.Repository.BuscarPorID(h.DB, idParam)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	snap, err := relatorio.CarregarSnapshot(h.DB, u.ID)
	if err != nil {
		http.Error(w, "erro ao carregar dados da folha", http.StatusInternalServerError)
		return
	}
	folha := calculofolha.ResumoDaAgencia(snap.Projetos, snap.Membros, snap.Pagamentos, snap.Despesas, calculofolha.Filtro{})

	var totalProjetos, totalPrestadores int64
	h.DB.Table("projetos").Where("usuario_id = ? AND deleted_at IS NULL", u.ID).Count(&totalProjetos)
	h.DB.Table("prestadores").Where("usuario_id = ? AND deleted_at IS NULL", u.ID).Count(&totalPrestadores)

	ass, _ := h.Assinaturas.BuscarPorUsuario(u.ID)
	dto := MontarResumoUsuarioDTO(*u, ass, folha, totalProjetos, totalPrestadores)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto)
}

// Me retorna o usuário logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var u Usuario
	if err := h.DB.Preload("Assinatura").First(&u, usuarioID).Error; err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}
