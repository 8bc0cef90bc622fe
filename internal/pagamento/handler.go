package pagamento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/CastorDigital/api-folha/internal/auth"
	"github.com/CastorDigital/api-folha/internal/calculofolha"
	"github.com/CastorDigital/api-folha/internal/notificacao"
	"github.com/CastorDigital/api-folha/internal/utils"
)

// Handler gerencia rotas de pagamento
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /projetos/{id}/pagamentos
type PagamentoCreateDTO struct {
	PrestadorID   uint            `json:"prestadorId"`
	Valor         decimal.Decimal `json:"valor"`
	DataPagamento time.Time       `json:"dataPagamento"`
	Metodo        string          `json:"metodo"`
	Referencia    string          `json:"referencia"`
}

func (h *Handler) autorizaProjeto(r *http.Request, projetoID uint) bool {
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)
	if isAdmin {
		return true
	}
	dono, err := h.Repo.ProjetoDono(projetoID)
	return err == nil && dono == usuarioID
}

// Criar trata POST /projetos/{id}/pagamentos. Um pagamento registrado
// dispara a reconciliação do par projeto/prestador; se o total pago
// passar do devido, o webhook de alerta é acionado.
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

	var dto PagamentoCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.PrestadorID == 0 {
		http.Error(w, "o campo 'prestadorId' é obrigatório", http.StatusBadRequest)
		return
	}
	if dto.Valor.Sign() <= 0 {
		http.Error(w, "valor do pagamento deve ser positivo", http.StatusBadRequest)
		return
	}
	if dto.DataPagamento.IsZero() {
		dto.DataPagamento = time.Now()
	}
	if dto.Referencia == "" {
		dto.Referencia = uuid.NewString()
	}

	p := Pagamento{
		ProjetoID:     uint(projetoID),
		PrestadorID:   dto.PrestadorID,
		Valor:         dto.Valor,
		DataPagamento: dto.DataPagamento,
		Metodo:        dto.Metodo,
		Referencia:    dto.Referencia,
	}
	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "erro ao registrar pagamento", http.StatusInternalServerError)
		return
	}

	rec, err := h.reconciliarPar(p.ProjetoID, p.PrestadorID)
	if err != nil {
		utils.Logger.Error().Err(err).
			Uint("projetoId", p.ProjetoID).
			Uint("prestadorId", p.PrestadorID).
			Msg("Erro ao reconciliar par após pagamento")
	} else if rec.SaldoDevedor.Sign() < 0 {
		go notificacao.EnviarAlertaPagamentoExcedente(p.ProjetoID, p.PrestadorID, rec.SaldoDevedor)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"pagamento":     p,
		"reconciliacao": rec,
	})
}

// Listar trata GET /projetos/{id}/pagamentos
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

	pagamentos, err := h.Repo.ListByProjeto(uint(projetoID))
	if err != nil {
		http.Error(w, "erro ao listar pagamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pagamentos)
}

// Historico trata GET /prestadores/{id}/pagamentos: todos os
// pagamentos feitos a um prestador, em qualquer projeto.
func (h *Handler) Historico(w http.ResponseWriter, r *http.Request) {
	prestadorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de prestador inválido", http.StatusBadRequest)
		return
	}

	usuarioID, isAdmin := auth.UsuarioDoContexto(r)
	if !isAdmin {
		dono, err := h.Repo.PrestadorDono(uint(prestadorID))
		if err != nil || dono != usuarioID {
			http.Error(w, "acesso negado", http.StatusForbidden)
			return
		}
	}

	pagamentos, err := h.Repo.ListByPrestador(uint(prestadorID))
	if err != nil {
		http.Error(w, "erro ao listar pagamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pagamentos)
}

// Todos trata GET /pagamentos: todos os pagamentos dos projetos do
// usuário logado.
func (h *Handler) Todos(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	pagamentos, err := h.Repo.ListByUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao listar pagamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pagamentos)
}

func (h *Handler) buscarAutorizado(w http.ResponseWriter, r *http.Request) *Pagamento {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID do pagamento inválido", http.StatusBadRequest)
		return nil
	}
	p, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "pagamento não encontrado", http.StatusNotFound)
		return nil
	}
	if !h.autorizaProjeto(r, p.ProjetoID) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil
	}
	return p
}

// BuscarPorID trata GET /pagamentos/{pid}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	p := h.buscarAutorizado(w, r)
	if p == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// DTO usado no PUT /pagamentos/{pid}
type PagamentoUpdateDTO struct {
	Valor         decimal.Decimal `json:"valor"`
	DataPagamento time.Time       `json:"dataPagamento"`
	Metodo        string          `json:"metodo"`
}

// Atualizar trata PUT /pagamentos/{pid}: correção de valor, data ou
// método. A referência não muda.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	p := h.buscarAutorizado(w, r)
	if p == nil {
		return
	}

	var dto PagamentoUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Valor.Sign() <= 0 {
		http.Error(w, "valor do pagamento deve ser positivo", http.StatusBadRequest)
		return
	}

	p.Valor = dto.Valor
	if !dto.DataPagamento.IsZero() {
		p.DataPagamento = dto.DataPagamento
	}
	if dto.Metodo != "" {
		p.Metodo = dto.Metodo
	}

	if err := h.Repo.Update(p); err != nil {
		http.Error(w, "erro ao atualizar pagamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Deletar trata DELETE /pagamentos/{pid}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	p := h.buscarAutorizado(w, r)
	if p == nil {
		return
	}
	if err := h.Repo.Delete(p); err != nil {
		http.Error(w, "erro ao remover pagamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// linha mínima da atribuição, lida direto da tabela para não depender
// do pacote equipe
type membroRow struct {
	TipoPagamento string
	ValorAcordado decimal.Decimal
	Percentual    decimal.Decimal
}

// reconciliarPar recalcula devido x pago do par projeto/prestador.
func (h *Handler) reconciliarPar(projetoID, prestadorID uint) (calculofolha.Reconciliacao, error) {
	var membro membroRow
	err := h.Repo.DB.Table("membro_equipes").
		Select("tipo_pagamento, valor_acordado, percentual").
		Where("projeto_id = ? AND prestador_id = ? AND deleted_at IS NULL", projetoID, prestadorID).
		Scan(&membro).Error
	if err != nil {
		return calculofolha.Reconciliacao{}, err
	}

	var orcamento decimal.Decimal
	var projetoSnapshot *calculofolha.Projeto
	err = h.Repo.DB.Table("projetos").
		Select("orcamento_total").
		Where("id = ? AND deleted_at IS NULL", projetoID).
		Scan(&orcamento).Error
	if err == nil {
		projetoSnapshot = &calculofolha.Projeto{ID: projetoID, OrcamentoTotal: orcamento}
	}

	pagos, err := h.Repo.ListByProjeto(projetoID)
	if err != nil {
		return calculofolha.Reconciliacao{}, err
	}
	snapshot := make([]calculofolha.Pagamento, 0, len(pagos))
	for _, pg := range pagos {
		if pg.PrestadorID != prestadorID {
			continue
		}
		snapshot = append(snapshot, calculofolha.Pagamento{
			ID:          pg.ID,
			ProjetoID:   pg.ProjetoID,
			PrestadorID: pg.PrestadorID,
			Valor:       pg.Valor,
			Data:        pg.DataPagamento,
		})
	}

	m := calculofolha.Membro{
		ProjetoID:     projetoID,
		PrestadorID:   prestadorID,
		Tipo:          calculofolha.TipoPagamento(membro.TipoPagamento),
		ValorAcordado: membro.ValorAcordado,
		Percentual:    membro.Percentual,
	}
	return calculofolha.Reconciliar(m, projetoSnapshot, snapshot), nil
}
