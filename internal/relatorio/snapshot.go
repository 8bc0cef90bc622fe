// Package relatorio expõe os resumos da folha: por prestador, por
// projeto e da agência inteira. Os handlers só carregam os dados e
// delegam a conta ao pacote calculofolha.
package relatorio

import (
	"time"

	"gorm.io/gorm"

	"github.com/CastorDigital/api-folha/internal/calculofolha"
	"github.com/CastorDigital/api-folha/internal/despesa"
	"github.com/CastorDigital/api-folha/internal/equipe"
	"github.com/CastorDigital/api-folha/internal/pagamento"
	"github.com/CastorDigital/api-folha/internal/projeto"
)

// Snapshot é a leitura completa da folha de um usuário, já no formato
// que o cálculo entende.
type Snapshot struct {
	Projetos   []calculofolha.Projeto
	Membros    []calculofolha.Membro
	Pagamentos []calculofolha.Pagamento
	Despesas   []calculofolha.Despesa
}

// MapearProjetos converte os modelos persistidos para o formato de
// cálculo. Mantido puro para ser testável sem banco.
func MapearProjetos(projetos []projeto.Projeto) []calculofolha.Projeto {
	out := make([]calculofolha.Projeto, 0, len(projetos))
	for _, p := range projetos {
		out = append(out, calculofolha.Projeto{
			ID:             p.ID,
			OrcamentoTotal: p.OrcamentoTotal,
		})
	}
	return out
}

func MapearMembros(membros []equipe.MembroEquipe) []calculofolha.Membro {
	out := make([]calculofolha.Membro, 0, len(membros))
	for _, m := range membros {
		out = append(out, calculofolha.Membro{
			ID:            m.ID,
			ProjetoID:     m.ProjetoID,
			PrestadorID:   m.PrestadorID,
			Tipo:          calculofolha.TipoPagamento(m.TipoPagamento),
			ValorAcordado: m.ValorAcordado,
			Percentual:    m.Percentual,
		})
	}
	return out
}

func MapearPagamentos(pagamentos []pagamento.Pagamento) []calculofolha.Pagamento {
	out := make([]calculofolha.Pagamento, 0, len(pagamentos))
	for _, p := range pagamentos {
		out = append(out, calculofolha.Pagamento{
			ID:          p.ID,
			ProjetoID:   p.ProjetoID,
			PrestadorID: p.PrestadorID,
			Valor:       p.Valor,
			Data:        p.DataPagamento,
		})
	}
	return out
}

func MapearDespesas(despesas []despesa.Despesa) []calculofolha.Despesa {
	out := make([]calculofolha.Despesa, 0, len(despesas))
	for _, d := range despesas {
		out = append(out, calculofolha.Despesa{
			ID:        d.ID,
			ProjetoID: d.ProjetoID,
			Valor:     d.Valor,
			Data:      d.DataDespesa,
		})
	}
	return out
}

// CarregarSnapshot lê projetos, equipes, pagamentos e despesas do
// usuário. Registros órfãos (projeto já removido) entram no snapshot
// e são descartados pelo cálculo, não aqui.
func CarregarSnapshot(db *gorm.DB, usuarioID uint) (Snapshot, error) {
	var projetos []projeto.Projeto
	if err := db.Where("usuario_id = ?", usuarioID).Find(&projetos).Error; err != nil {
		return Snapshot{}, err
	}

	var membros []equipe.MembroEquipe
	if err := db.
		Joins("JOIN projetos ON projetos.id = membro_equipes.projeto_id").
		Where("projetos.usuario_id = ? AND projetos.deleted_at IS NULL", usuarioID).
		Find(&membros).Error; err != nil {
		return Snapshot{}, err
	}

	var pagamentos []pagamento.Pagamento
	if err := db.
		Joins("JOIN projetos ON projetos.id = pagamentos.projeto_id").
		Where("projetos.usuario_id = ? AND projetos.deleted_at IS NULL", usuarioID).
		Find(&pagamentos).Error; err != nil {
		return Snapshot{}, err
	}

	var despesas []despesa.Despesa
	if err := db.
		Joins("JOIN projetos ON projetos.id = despesas.projeto_id").
		Where("projetos.usuario_id = ? AND projetos.deleted_at IS NULL", usuarioID).
		Find(&despesas).Error; err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Projetos:   MapearProjetos(projetos),
		Membros:    MapearMembros(membros),
		Pagamentos: MapearPagamentos(pagamentos),
		Despesas:   MapearDespesas(despesas),
	}, nil
}

// datas inclusivas nas duas pontas
func dentroDoPeriodo(d time.Time, f calculofolha.Filtro) bool {
	if f.Inicio != nil && d.Before(*f.Inicio) {
		return false
	}
	if f.Fim != nil && d.After(*f.Fim) {
		return false
	}
	return true
}

// Filtrar aplica o filtro ao snapshot antes dos resumos por prestador
// e por projeto, que operam sobre a lista inteira que recebem. O
// orçamento do projeto nunca é rateado por data, então projetos só
// saem do snapshot por ID.
func (s Snapshot) Filtrar(f calculofolha.Filtro) Snapshot {
	out := Snapshot{}

	for _, p := range s.Projetos {
		if f.ProjetoID != nil && p.ID != *f.ProjetoID {
			continue
		}
		out.Projetos = append(out.Projetos, p)
	}
	for _, m := range s.Membros {
		if f.ProjetoID != nil && m.ProjetoID != *f.ProjetoID {
			continue
		}
		if f.PrestadorID != nil && m.PrestadorID != *f.PrestadorID {
			continue
		}
		out.Membros = append(out.Membros, m)
	}
	for _, p := range s.Pagamentos {
		if f.ProjetoID != nil && p.ProjetoID != *f.ProjetoID {
			continue
		}
		if f.PrestadorID != nil && p.PrestadorID != *f.PrestadorID {
			continue
		}
		if !dentroDoPeriodo(p.Data, f) {
			continue
		}
		out.Pagamentos = append(out.Pagamentos, p)
	}
	for _, d := range s.Despesas {
		if f.ProjetoID != nil && d.ProjetoID != *f.ProjetoID {
			continue
		}
		if !dentroDoPeriodo(d.Data, f) {
			continue
		}
		out.Despesas = append(out.Despesas, d)
	}
	return out
}
