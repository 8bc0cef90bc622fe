package assinatura

import (
	"encoding/json"
	"net/http"

	"github.com/CastorDigital/api-folha/internal/auth"
)

// Handler expõe a assinatura do usuário logado.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Minha trata GET /assinatura
func (h *Handler) Minha(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	a, err := h.Repo.GarantirPadrao(usuarioID)
	if err != nil {
		http.Error(w, "erro ao buscar assinatura", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}
