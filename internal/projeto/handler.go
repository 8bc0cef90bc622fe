package projeto

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/CastorDigital/api-folha/internal/assinatura"
	"github.com/CastorDigital/api-folha/internal/auth"
	"github.com/CastorDigital/api-folha/internal/utils"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type createProjetoRequest struct {
	Nome               string          `json:"nome"`
	Cliente            string          `json:"cliente"`
	OrcamentoTotal     decimal.Decimal `json:"orcamentoTotal"`
	EstruturaPagamento string          `json:"estruturaPagamento"`
	Status             string          `json:"status"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Assinaturas *assinatura.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Assinaturas: assinatura.NewRepository(db),
	}
}

// BuscarDoUsuario carrega o projeto conferindo a posse. Usado também
// pelos handlers aninhados (equipe, pagamentos, despesas, holerites).
func (h *Handler) BuscarDoUsuario(r *http.Request, chave string) (*Projeto, int) {
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)

	id, err := strconv.Atoi(mux.Vars(r)[chave])
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

// Criar trata POST /projetos, respeitando o limite do plano.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var req createProjetoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "o campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}
	if req.OrcamentoTotal.Sign() < 0 {
		http.Error(w, "orçamento não pode ser negativo", http.StatusBadRequest)
		return
	}

	assin, _ := h.Assinaturas.GarantirPadrao(usuarioID)
	total, err := h.Repository.ContarPorUsuario(h.DB, usuarioID)
	if err != nil {
		http.Error(w, "erro ao verificar limite do plano", http.StatusInternalServerError)
		return
	}
	if !assinatura.PermiteNovoProjeto(assin, total) {
		utils.Logger.Warn().Uint("usuarioId", usuarioID).Msg("limite de projetos do plano atingido")
		http.Error(w, "limite de projetos do plano atingido", http.StatusPaymentRequired)
		return
	}

	estrutura := req.EstruturaPagamento
	if estrutura == "" {
		estrutura = EstruturaPagamentoUnico
	}
	status := req.Status
	if status == "" {
		status = StatusAtivo
	}

	p := Projeto{
		UsuarioID:          usuarioID,
		Nome:               req.Nome,
		Cliente:            req.Cliente,
		OrcamentoTotal:     req.OrcamentoTotal,
		EstruturaPagamento: estrutura,
		Status:             status,
	}
	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		http.Error(w, "erro ao salvar projeto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// Listar trata GET /projetos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	projetos, err := h.Repository.ListarPorUsuario(h.DB, usuarioID)
	if err != nil {
		http.Error(w, "erro ao listar projetos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(projetos)
}

// BuscarPorID trata GET /projetos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	p, status := h.BuscarDoUsuario(r, "id")
	if status != 0 {
		http.Error(w, "projeto não encontrado", status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Atualizar trata PUT /projetos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	p, status := h.BuscarDoUsuario(r, "id")
	if status != 0 {
		http.Error(w, "projeto não encontrado", status)
		return
	}

	var dados Projeto
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, p.ID, &dados); err != nil {
		http.Error(w, "erro ao atualizar projeto", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("projeto atualizado com sucesso"))
}

// Deletar trata DELETE /projetos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	p, status := h.BuscarDoUsuario(r, "id")
	if status != 0 {
		http.Error(w, "projeto não encontrado", status)
		return
	}
	if err := h.Repository.Deletar(h.DB, p.ID); err != nil {
		http.Error(w, "erro ao excluir projeto", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("projeto excluído com sucesso"))
}
