package holerite

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
)

// Handler gerencia rotas de holerite
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /projetos/{id}/prestadores/{cid}/holerites. O
// período é opcional: omitido, o holerite cobre todo o histórico do
// par.
type EmitirDTO struct {
	PeriodoInicio *time.Time `json:"periodoInicio"`
	PeriodoFim    *time.Time `json:"periodoFim"`
}

func (h *Handler) autorizaProjeto(r *http.Request, projetoID uint) (uint, bool) {
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)
	dono, err := h.Repo.ProjetoDono(projetoID)
	if err != nil || dono == 0 {
		return 0, false
	}
	if isAdmin || dono == usuarioID {
		return dono, true
	}
	return 0, false
}

// Emitir trata POST /projetos/{id}/prestadores/{cid}/holerites:
// reconcilia o par no período pedido e grava a fotografia.
func (h *Handler) Emitir(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	projetoID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID de projeto inválido", http.StatusBadRequest)
		return
	}
	prestadorID, err := strconv.Atoi(vars["cid"])
	if err != nil {
		http.Error(w, "ID de prestador inválido", http.StatusBadRequest)
		return
	}
	dono, ok := h.autorizaProjeto(r, uint(projetoID))
	if !ok {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dto EmitirDTO
	if r.Body != nil {
		// corpo vazio é aceito
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}
	if dto.PeriodoInicio != nil && dto.PeriodoFim != nil && dto.PeriodoFim.Before(*dto.PeriodoInicio) {
		http.Error(w, "período inválido: fim antes do início", http.StatusBadRequest)
		return
	}

	rec, encontrado, err := h.reconciliarPar(uint(projetoID), uint(prestadorID), dto.PeriodoInicio, dto.PeriodoFim)
	if err != nil {
		http.Error(w, "erro ao reconciliar pagamento", http.StatusInternalServerError)
		return
	}
	if !encontrado {
		http.Error(w, "prestador não faz parte da equipe do projeto", http.StatusNotFound)
		return
	}

	hol := Holerite{
		UsuarioID:     dono,
		ProjetoID:     uint(projetoID),
		PrestadorID:   uint(prestadorID),
		Numero:        uuid.NewString(),
		ValorDevido:   rec.ValorDevido,
		TotalPago:     rec.TotalPago,
		SaldoDevedor:  rec.SaldoDevedor,
		SaldoCobravel: decimal.Max(rec.SaldoDevedor, decimal.Zero),
		Status:        rec.Status,
	}
	if dto.PeriodoInicio != nil {
		hol.PeriodoInicio = *dto.PeriodoInicio
	}
	if dto.PeriodoFim != nil {
		hol.PeriodoFim = *dto.PeriodoFim
	}

	if err := h.Repo.Create(&hol); err != nil {
		http.Error(w, "erro ao emitir holerite", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(hol)
}

// Listar trata GET /holerites (todos os holerites do usuário) e,
// com ?prestadorId=, filtra por prestador.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	if q := r.URL.Query().Get("prestadorId"); q != "" {
		prestadorID, err := strconv.Atoi(q)
		if err != nil {
			http.Error(w, "prestadorId inválido", http.StatusBadRequest)
			return
		}
		dono, err := h.Repo.PrestadorDono(uint(prestadorID))
		if err != nil || dono != usuarioID {
			http.Error(w, "acesso negado", http.StatusForbidden)
			return
		}
		holerites, err := h.Repo.ListByPrestador(uint(prestadorID))
		if err != nil {
			http.Error(w, "erro ao listar holerites", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(holerites)
		return
	}

	holerites, err := h.Repo.ListByUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao listar holerites", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(holerites)
}

func (h *Handler) buscarAutorizado(w http.ResponseWriter, r *http.Request) *Holerite {
	hid, err := strconv.Atoi(mux.Vars(r)["hid"])
	if err != nil {
		http.Error(w, "ID do holerite inválido", http.StatusBadRequest)
		return nil
	}
	hol, err := h.Repo.FindByID(uint(hid))
	if err != nil {
		http.Error(w, "holerite não encontrado", http.StatusNotFound)
		return nil
	}
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)
	if !isAdmin && hol.UsuarioID != usuarioID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil
	}
	return hol
}

// BuscarPorID trata GET /holerites/{hid}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	hol := h.buscarAutorizado(w, r)
	if hol == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(hol)
}

// Deletar trata DELETE /holerites/{hid}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	hol := h.buscarAutorizado(w, r)
	if hol == nil {
		return
	}
	if err := h.Repo.Delete(hol); err != nil {
		http.Error(w, "erro ao remover holerite", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type membroRow struct {
	ID            uint
	TipoPagamento string
	ValorAcordado decimal.Decimal
	Percentual    decimal.Decimal
}

type pagamentoRow struct {
	ID            uint
	Valor         decimal.Decimal
	DataPagamento time.Time
}

// reconciliarPar monta o snapshot do par, restrito ao período quando
// informado (datas inclusivas nas duas pontas).
func (h *Handler) reconciliarPar(projetoID, prestadorID uint, inicio, fim *time.Time) (calculofolha.Reconciliacao, bool, error) {
	var membro membroRow
	err := h.Repo.DB.Table("membro_equipes").
		Select("id, tipo_pagamento, valor_acordado, percentual").
		Where("projeto_id = ? AND prestador_id = ? AND deleted_at IS NULL", projetoID, prestadorID).
		Scan(&membro).Error
	if err != nil {
		return calculofolha.Reconciliacao{}, false, err
	}
	if membro.ID == 0 {
		return calculofolha.Reconciliacao{}, false, nil
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

	var pagos []pagamentoRow
	if err := h.Repo.DB.Table("pagamentos").
		Select("id, valor, data_pagamento").
		Where("projeto_id = ? AND prestador_id = ? AND deleted_at IS NULL", projetoID, prestadorID).
		Scan(&pagos).Error; err != nil {
		return calculofolha.Reconciliacao{}, false, err
	}

	snapshot := make([]calculofolha.Pagamento, 0, len(pagos))
	for _, pg := range pagos {
		if inicio != nil && pg.DataPagamento.Before(*inicio) {
			continue
		}
		if fim != nil && pg.DataPagamento.After(*fim) {
			continue
		}
		snapshot = append(snapshot, calculofolha.Pagamento{
			ID:          pg.ID,
			ProjetoID:   projetoID,
			PrestadorID: prestadorID,
			Valor:       pg.Valor,
			Data:        pg.DataPagamento,
		})
	}

	m := calculofolha.Membro{
		ID:            membro.ID,
		ProjetoID:     projetoID,
		PrestadorID:   prestadorID,
		Tipo:          calculofolha.TipoPagamento(membro.TipoPagamento),
		ValorAcordado: membro.ValorAcordado,
		Percentual:    membro.Percentual,
	}
	return calculofolha.Reconciliar(m, projetoSnapshot, snapshot), true, nil
}
