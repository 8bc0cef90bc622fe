package relatorio

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/CastorDigital/api-folha/internal/auth"
	"github.com/CastorDigital/api-folha/internal/calculofolha"
)

// Handler gerencia rotas de relatório
type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// lerFiltro monta o filtro a partir da query string: inicio e fim no
// formato 2006-01-02, projetoId e prestadorId numéricos.
func lerFiltro(r *http.Request) (calculofolha.Filtro, error) {
	var f calculofolha.Filtro
	q := r.URL.Query()

	if v := q.Get("inicio"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, err
		}
		f.Inicio = &t
	}
	if v := q.Get("fim"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, err
		}
		f.Fim = &t
	}
	if v := q.Get("projetoId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return f, err
		}
		u := uint(id)
		f.ProjetoID = &u
	}
	if v := q.Get("prestadorId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return f, err
		}
		u := uint(id)
		f.PrestadorID = &u
	}
	return f, nil
}

func (h *Handler) carregar(w http.ResponseWriter, r *http.Request) (Snapshot, calculofolha.Filtro, bool) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	f, err := lerFiltro(r)
	if err != nil {
		http.Error(w, "filtro inválido", http.StatusBadRequest)
		return Snapshot{}, f, false
	}

	snap, err := CarregarSnapshot(h.DB, usuarioID)
	if err != nil {
		http.Error(w, "erro ao carregar dados do relatório", http.StatusInternalServerError)
		return Snapshot{}, f, false
	}
	return snap, f, true
}

// Prestadores trata GET /relatorios/prestadores
func (h *Handler) Prestadores(w http.ResponseWriter, r *http.Request) {
	snap, f, ok := h.carregar(w, r)
	if !ok {
		return
	}
	snap = snap.Filtrar(f)
	resumos := calculofolha.ResumoPorPrestador(snap.Membros, snap.Projetos, snap.Pagamentos)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumos)
}

// Projetos trata GET /relatorios/projetos
func (h *Handler) Projetos(w http.ResponseWriter, r *http.Request) {
	snap, f, ok := h.carregar(w, r)
	if !ok {
		return
	}
	snap = snap.Filtrar(f)
	resumos := calculofolha.ResumoPorProjeto(snap.Projetos, snap.Membros, snap.Pagamentos, snap.Despesas)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumos)
}

// Agencia trata GET /relatorios/agencia
func (h *Handler) Agencia(w http.ResponseWriter, r *http.Request) {
	snap, f, ok := h.carregar(w, r)
	if !ok {
		return
	}
	resumo := calculofolha.ResumoDaAgencia(snap.Projetos, snap.Membros, snap.Pagamentos, snap.Despesas, f)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}

func (h *Handler) dono(tabela string, id uint) (uint, error) {
	var usuarioID uint
	err := h.DB.Table(tabela).
		Select("usuario_id").
		Where("id = ? AND deleted_at IS NULL", id).
		Scan(&usuarioID).Error
	return usuarioID, err
}

// ResumoProjeto trata GET /projetos/{id}/resumo
func (h *Handler) ResumoProjeto(w http.ResponseWriter, r *http.Request) {
	projetoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de projeto inválido", http.StatusBadRequest)
		return
	}

	usuarioID, isAdmin := auth.UsuarioDoContexto(r)
	dono, err := h.dono("projetos", uint(projetoID))
	if err != nil || dono == 0 {
		http.Error(w, "projeto não encontrado", http.StatusNotFound)
		return
	}
	if !isAdmin && dono != usuarioID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	f, err := lerFiltro(r)
	if err != nil {
		http.Error(w, "filtro inválido", http.StatusBadRequest)
		return
	}
	id := uint(projetoID)
	f.ProjetoID = &id

	snap, err := CarregarSnapshot(h.DB, dono)
	if err != nil {
		http.Error(w, "erro ao carregar dados do relatório", http.StatusInternalServerError)
		return
	}
	snap = snap.Filtrar(f)

	resumos := calculofolha.ResumoPorProjeto(snap.Projetos, snap.Membros, snap.Pagamentos, snap.Despesas)
	if len(resumos) == 0 {
		http.Error(w, "projeto não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumos[0])
}

// ResumoPrestador trata GET /prestadores/{id}/resumo
func (h *Handler) ResumoPrestador(w http.ResponseWriter, r *http.Request) {
	prestadorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de prestador inválido", http.StatusBadRequest)
		return
	}

	usuarioID, isAdmin := auth.UsuarioDoContexto(r)
	dono, err := h.dono("prestadores", uint(prestadorID))
	if err != nil || dono == 0 {
		http.Error(w, "prestador não encontrado", http.StatusNotFound)
		return
	}
	if !isAdmin && dono != usuarioID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	f, err := lerFiltro(r)
	if err != nil {
		http.Error(w, "filtro inválido", http.StatusBadRequest)
		return
	}
	id := uint(prestadorID)
	f.PrestadorID = &id

	snap, err := CarregarSnapshot(h.DB, dono)
	if err != nil {
		http.Error(w, "erro ao carregar dados do relatório", http.StatusInternalServerError)
		return
	}
	snap = snap.Filtrar(f)

	resumos := calculofolha.ResumoPorPrestador(snap.Membros, snap.Projetos, snap.Pagamentos)
	if len(resumos) == 0 {
		// prestador sem atribuição nem pagamento: resumo zerado
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(calculofolha.ResumoPrestador{PrestadorID: id})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumos[0])
}
