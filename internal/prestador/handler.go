package prestador

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/CastorDigital/api-folha/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type createPrestadorRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Funcao    string `json:"funcao"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// carrega o prestador conferindo que pertence ao usuário logado
func (h *Handler) buscarDoUsuario(r *http.Request) (*Prestador, int) {
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return nil, http.StatusBadRequest
	}
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		return nil, http.StatusNotFound
	}
	if !isAdmin && p.UsuarioID != usuarioID {
		return nil, http.StatusForbidden
	}
	return p, 0
}

// Criar trata POST /prestadores
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var req createPrestadorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "o campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	p := Prestador{
		UsuarioID: usuarioID,
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Email:     req.Email,
		Telefone:  req.Telefone,
		Funcao:    req.Funcao,
	}
	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		http.Error(w, "erro ao salvar prestador", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// Listar trata GET /prestadores
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	prestadores, err := h.Repository.ListarPorUsuario(h.DB, usuarioID)
	if err != nil {
		http.Error(w, "erro ao listar prestadores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(prestadores)
}

// BuscarPorID trata GET /prestadores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	p, status := h.buscarDoUsuario(r)
	if status != 0 {
		http.Error(w, "prestador não encontrado", status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Atualizar trata PUT /prestadores/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	p, status := h.buscarDoUsuario(r)
	if status != 0 {
		http.Error(w, "prestador não encontrado", status)
		return
	}

	var dados Prestador
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, p.ID, &dados); err != nil {
		http.Error(w, "erro ao atualizar prestador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("prestador atualizado com sucesso"))
}

// Deletar trata DELETE /prestadores/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	p, status := h.buscarDoUsuario(r)
	if status != 0 {
		http.Error(w, "prestador não encontrado", status)
		return
	}
	if err := h.Repository.Deletar(h.DB, p.ID); err != nil {
		http.Error(w, "erro ao excluir prestador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("prestador excluído com sucesso"))
}
