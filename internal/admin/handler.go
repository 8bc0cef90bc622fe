// Package admin concentra as rotas de console da plataforma. Todas
// exigem o middleware de admin; aqui só se valida o payload.
package admin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/CastorDigital/api-folha/internal/assinatura"
	"github.com/CastorDigital/api-folha/internal/usuario"
	"github.com/CastorDigital/api-folha/internal/utils"
)

type Handler struct {
	DB          *gorm.DB
	Usuarios    usuario.Repository
	Assinaturas *assinatura.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Usuarios:    usuario.NewRepository(),
		Assinaturas: assinatura.NewRepository(db),
	}
}

type alterarAssinaturaRequest struct {
	Plano  string `json:"plano"`
	Status string `json:"status"`
}

// ResumoPlataforma são os números agregados da base inteira.
type ResumoPlataforma struct {
	TotalUsuarios    int64           `json:"totalUsuarios"`
	TotalProjetos    int64           `json:"totalProjetos"`
	TotalPrestadores int64           `json:"totalPrestadores"`
	TotalPago        decimal.Decimal `json:"totalPago"`
	TotalDespesas    decimal.Decimal `json:"totalDespesas"`
}

// ListarUsuarios trata GET /admin/usuarios
func (h *Handler) ListarUsuarios(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Usuarios.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(usuarios)
}

// AlterarAssinatura trata PATCH /admin/usuarios/{id}/assinatura
func (h *Handler) AlterarAssinatura(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req alterarAssinaturaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	switch req.Plano {
	case assinatura.PlanoGratuito, assinatura.PlanoProfissional, assinatura.PlanoAgencia:
	default:
		http.Error(w, "plano desconhecido", http.StatusBadRequest)
		return
	}
	switch req.Status {
	case assinatura.StatusAtiva, assinatura.StatusInadimplente, assinatura.StatusCancelada:
	default:
		http.Error(w, "status de assinatura desconhecido", http.StatusBadRequest)
		return
	}

	if _, err := h.Usuarios.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Assinaturas.AlterarPlano(uint(id), req.Plano, req.Status); err != nil {
		http.Error(w, "erro ao alterar assinatura", http.StatusInternalServerError)
		return
	}

	utils.Logger.Info().
		Uint("usuarioId", uint(id)).
		Str("plano", req.Plano).
		Str("status", req.Status).
		Msg("Assinatura alterada pelo console")

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("assinatura atualizada com sucesso"))
}

// ResetarSenha trata POST /admin/usuarios/{id}/reset-senha: gera uma
// senha temporária e obriga a troca no próximo login.
func (h *Handler) ResetarSenha(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Usuarios.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	temp, err := utils.GerarSenhaTemporaria()
	if err != nil {
		http.Error(w, "erro ao gerar senha", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(temp)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	if err := h.DB.Model(&usuario.Usuario{}).Where("id = ?", id).Updates(map[string]interface{}{
		"senha":                   hash,
		"precisa_redefinir_senha": true,
	}).Error; err != nil {
		http.Error(w, "erro ao redefinir senha", http.StatusInternalServerError)
		return
	}

	utils.Logger.Info().Uint("usuarioId", uint(id)).Msg("Senha redefinida pelo console")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"senhaTemporaria": temp})
}

// Resumo trata GET /admin/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	var resumo ResumoPlataforma

	h.DB.Table("usuarios").Where("deleted_at IS NULL").Count(&resumo.TotalUsuarios)
	h.DB.Table("projetos").Where("deleted_at IS NULL").Count(&resumo.TotalProjetos)
	h.DB.Table("prestadores").Where("deleted_at IS NULL").Count(&resumo.TotalPrestadores)

	var totalPago, totalDespesas decimal.Decimal
	if err := h.DB.Table("pagamentos").
		Select("COALESCE(SUM(valor), 0)").
		Where("deleted_at IS NULL").
		Scan(&totalPago).Error; err != nil {
		http.Error(w, "erro ao consolidar pagamentos", http.StatusInternalServerError)
		return
	}
	if err := h.DB.Table("despesas").
		Select("COALESCE(SUM(valor), 0)").
		Where("deleted_at IS NULL").
		Scan(&totalDespesas).Error; err != nil {
		http.Error(w, "erro ao consolidar despesas", http.StatusInternalServerError)
		return
	}
	resumo.TotalPago = totalPago
	resumo.TotalDespesas = totalDespesas

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}
