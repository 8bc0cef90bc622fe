package equipe

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/CastorDigital/api-folha/internal/auth"
	"github.com/CastorDigital/api-folha/internal/calculofolha"
	"github.com/CastorDigital/api-folha/internal/pagamento"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// Handler gerencia rotas de equipe de projeto
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /projetos/{id}/equipe
type MembroCreateDTO struct {
	PrestadorID   uint            `json:"prestadorId"`
	TipoPagamento string          `json:"tipoPagamento"`
	ValorAcordado decimal.Decimal `json:"valorAcordado"`
	Percentual    decimal.Decimal `json:"percentual"`
}

// DTO usado no PUT /equipe/{mid}
type MembroUpdateDTO struct {
	TipoPagamento   string          `json:"tipoPagamento"`
	ValorAcordado   decimal.Decimal `json:"valorAcordado"`
	Percentual      decimal.Decimal `json:"percentual"`
	StatusPagamento string          `json:"statusPagamento"`
}

var cemPorCento = decimal.NewFromInt(100)

// Validação de faixa só na entrada de dados: o cálculo em si aceita
// qualquer percentual (política do chamador).
func percentualValido(p decimal.Decimal) bool {
	return p.Sign() >= 0 && p.LessThanOrEqual(cemPorCento)
}

func (h *Handler) autorizaProjeto(r *http.Request, projetoID uint) bool {
	usuarioID, isAdmin := auth.UsuarioDoContexto(r)
	if isAdmin {
		return true
	}
	dono, err := h.Repo.ProjetoDono(projetoID)
	return err == nil && dono == usuarioID
}

// Create trata POST /projetos/{id}/equipe
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	projetoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de projeto inválido", http.StatusBadRequest)
		return
	}
	if !h.autorizaProjeto(r, uint(projetoID)) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dto MembroCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.PrestadorID == 0 {
		http.Error(w, "o campo 'prestadorId' é obrigatório", http.StatusBadRequest)
		return
	}
	switch dto.TipoPagamento {
	case TipoValorFixo:
		if dto.ValorAcordado.Sign() < 0 {
			http.Error(w, "valor acordado não pode ser negativo", http.StatusBadRequest)
			return
		}
	case TipoPercentual:
		if !percentualValido(dto.Percentual) {
			http.Error(w, "percentual deve estar entre 0 e 100", http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, "tipo de pagamento inválido", http.StatusBadRequest)
		return
	}

	m := MembroEquipe{
		ProjetoID:       uint(projetoID),
		PrestadorID:     dto.PrestadorID,
		TipoPagamento:   dto.TipoPagamento,
		ValorAcordado:   dto.ValorAcordado,
		Percentual:      dto.Percentual,
		StatusPagamento: calculofolha.StatusPendente,
	}
	if err := h.Repo.Create(&m); err != nil {
		http.Error(w, "erro ao adicionar membro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// List trata GET /projetos/{id}/equipe
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	projetoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de projeto inválido", http.StatusBadRequest)
		return
	}
	if !h.autorizaProjeto(r, uint(projetoID)) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	membros, err := h.Repo.ListByProjeto(uint(projetoID))
	if err != nil {
		http.Error(w, "erro ao buscar equipe", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(membros)
}

// ListarDoUsuario trata GET /equipe: todas as atribuições dos
// projetos do usuário logado.
func (h *Handler) ListarDoUsuario(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	membros, err := h.Repo.ListByUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao buscar atribuições", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(membros)
}

// ListarPorPrestador trata GET /prestadores/{id}/atribuicoes
func (h *Handler) ListarPorPrestador(w http.ResponseWriter, r *http.Request) {
	prestadorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de prestador inválido", http.StatusBadRequest)
		return
	}

	usuarioID, isAdmin := auth.UsuarioDoContexto(r)
	if !isAdmin {
		var dono uint
		err := h.Repo.DB.Table("prestadores").
			Select("usuario_id").
			Where("id = ? AND deleted_at IS NULL", prestadorID).
			Scan(&dono).Error
		if err != nil || dono != usuarioID {
			http.Error(w, "acesso negado", http.StatusForbidden)
			return
		}
	}

	membros, err := h.Repo.ListByPrestador(uint(prestadorID))
	if err != nil {
		http.Error(w, "erro ao buscar atribuições", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(membros)
}

func (h *Handler) buscarAutorizado(w http.ResponseWriter, r *http.Request) *MembroEquipe {
	mid, err := strconv.Atoi(mux.Vars(r)["mid"])
	if err != nil {
		http.Error(w, "ID do membro inválido", http.StatusBadRequest)
		return nil
	}
	m, err := h.Repo.FindByID(uint(mid))
	if err != nil {
		http.Error(w, "membro não encontrado", http.StatusNotFound)
		return nil
	}
	if !h.autorizaProjeto(r, m.ProjetoID) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil
	}
	return m
}

// Get trata GET /equipe/{mid}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	m := h.buscarAutorizado(w, r)
	if m == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// Update trata PUT /equipe/{mid}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	m := h.buscarAutorizado(w, r)
	if m == nil {
		return
	}

	var dto MembroUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.TipoPagamento == TipoPercentual && !percentualValido(dto.Percentual) {
		http.Error(w, "percentual deve estar entre 0 e 100", http.StatusBadRequest)
		return
	}

	m.TipoPagamento = dto.TipoPagamento
	m.ValorAcordado = dto.ValorAcordado
	m.Percentual = dto.Percentual
	if dto.StatusPagamento != "" {
		m.StatusPagamento = dto.StatusPagamento
	}

	if err := h.Repo.Update(m); err != nil {
		http.Error(w, "erro ao atualizar membro", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// SincronizarStatus trata PATCH /equipe/{mid}/sincronizar-status:
// reconcilia o par e grava o status derivado no rótulo persistido.
// É a única via pela qual o status calculado vira status gravado.
func (h *Handler) SincronizarStatus(w http.ResponseWriter, r *http.Request) {
	m := h.buscarAutorizado(w, r)
	if m == nil {
		return
	}

	rec, err := h.reconciliarMembro(m)
	if err != nil {
		http.Error(w, "erro ao reconciliar pagamento", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.UpdateStatus(m.ID, rec.Status); err != nil {
		http.Error(w, "erro ao gravar status", http.StatusInternalServerError)
		return
	}
	m.StatusPagamento = rec.Status

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"membro":        m,
		"reconciliacao": rec,
	})
}

// Delete trata DELETE /equipe/{mid}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	m := h.buscarAutorizado(w, r)
	if m == nil {
		return
	}
	if err := h.Repo.Delete(m); err != nil {
		http.Error(w, "erro ao remover membro", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// reconciliarMembro monta o snapshot mínimo do par e roda o cálculo.
func (h *Handler) reconciliarMembro(m *MembroEquipe) (calculofolha.Reconciliacao, error) {
	var orcamento decimal.Decimal
	var projetoSnapshot *calculofolha.Projeto
	err := h.Repo.DB.Table("projetos").
		Select("orcamento_total").
		Where("id = ? AND deleted_at IS NULL", m.ProjetoID).
		Scan(&orcamento).Error
	if err == nil {
		projetoSnapshot = &calculofolha.Projeto{ID: m.ProjetoID, OrcamentoTotal: orcamento}
	}

	var pagos []pagamento.Pagamento
	if err := h.Repo.DB.
		Where("projeto_id = ? AND prestador_id = ?", m.ProjetoID, m.PrestadorID).
		Find(&pagos).Error; err != nil {
		return calculofolha.Reconciliacao{}, err
	}

	snapshot := make([]calculofolha.Pagamento, 0, len(pagos))
	for _, pg := range pagos {
		snapshot = append(snapshot, calculofolha.Pagamento{
			ID:          pg.ID,
			ProjetoID:   pg.ProjetoID,
			PrestadorID: pg.PrestadorID,
			Valor:       pg.Valor,
			Data:        pg.DataPagamento,
		})
	}

	membro := calculofolha.Membro{
		ID:            m.ID,
		ProjetoID:     m.ProjetoID,
		PrestadorID:   m.PrestadorID,
		Tipo:          calculofolha.TipoPagamento(m.TipoPagamento),
		ValorAcordado: m.ValorAcordado,
		Percentual:    m.Percentual,
	}
	return calculofolha.Reconciliar(membro, projetoSnapshot, snapshot), nil
}
