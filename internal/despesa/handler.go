package despesa

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/CastorDigital/api-folha/internal/auth"
)

// Handler gerencia rotas de despesa de projeto
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type DespesaDTO struct {
	Categoria   string          `json:"categoria"`
	Valor       decimal.Decimal `json:"valor"`
	DataDespesa time.Time       `json:"dataDespesa"`
	Observacao  string          `json:"observacao"`
}

func (h *Handler) autorizaProjeto(r *http.Request, projetoID uint) bool {
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)
	if isAdmin {
		return true
	}
	dono, err := h.Repo.ProjetoDono(projetoID)
	return err == nil && dono == usuarioID
}

// Criar trata POST /projetos/{id}/despesas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	projetoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de projeto inválido", http.StatusBadRequest)
		return
	}
	if !h.autorizaProjeto(r, uint(projetoID)) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dto DespesaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Valor.Sign() < 0 {
		http.Error(w, "valor da despesa não pode ser negativo", http.StatusBadRequest)
		return
	}
	if dto.DataDespesa.IsZero() {
		dto.DataDespesa = time.Now()
	}

	d := Despesa{
		ProjetoID:   uint(projetoID),
		Categoria:   dto.Categoria,
		Valor:       dto.Valor,
		DataDespesa: dto.DataDespesa,
		Observacao:  dto.Observacao,
	}
	if err := h.Repo.Create(&d); err != nil {
		http.Error(w, "erro ao registrar despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(d)
}

// Listar trata GET /projetos/{id}/despesas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	projetoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de projeto inválido", http.StatusBadRequest)
		return
	}
	if !h.autorizaProjeto(r, uint(projetoID)) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	despesas, err := h.Repo.ListByProjeto(uint(projetoID))
	if err != nil {
		http.Error(w, "erro ao listar despesas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(despesas)
}

func (h *Handler) buscarAutorizada(w http.ResponseWriter, r *http.Request) *Despesa {
	did, err := strconv.Atoi(mux.Vars(r)["did"])
	if err != nil {
		http.Error(w, "ID da despesa inválido", http.StatusBadRequest)
		return nil
	}
	d, err := h.Repo.FindByID(uint(did))
	if err != nil {
		http.Error(w, "despesa não encontrada", http.StatusNotFound)
		return nil
	}
	if !h.autorizaProjeto(r, d.ProjetoID) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil
	}
	return d
}

// Atualizar trata PUT /despesas/{did}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	d := h.buscarAutorizada(w, r)
	if d == nil {
		return
	}

	var dto DespesaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Valor.Sign() < 0 {
		http.Error(w, "valor da despesa não pode ser negativo", http.StatusBadRequest)
		return
	}

	d.Categoria = dto.Categoria
	d.Valor = dto.Valor
	if !dto.DataDespesa.IsZero() {
		d.DataDespesa = dto.DataDespesa
	}
	d.Observacao = dto.Observacao

	if err := h.Repo.Update(d); err != nil {
		http.Error(w, "erro ao atualizar despesa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// Deletar trata DELETE /despesas/{did}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	d := h.buscarAutorizada(w, r)
	if d == nil {
		return
	}
	if err := h.Repo.Delete(d); err != nil {
		http.Error(w, "erro ao remover despesa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
