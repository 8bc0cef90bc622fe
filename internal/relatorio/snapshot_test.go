package relatorio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CastorDigital/api-folha/internal/calculofolha"
	"github.com/CastorDigital/api-folha/internal/equipe"
	"github.com/CastorDigital/api-folha/internal/pagamento"
	"github.com/CastorDigital/api-folha/internal/projeto"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func TestMapearMembrosPreservaTipoEValores(t *testing.T) {
	membros := []equipe.MembroEquipe{
		{
			Model:         gorm.Model{ID: 4},
			ProjetoID:     1,
			PrestadorID:   2,
			TipoPagamento: equipe.TipoPercentual,
			Percentual:    dec("30"),
		},
	}
	out := MapearMembros(membros)
	if len(out) != 1 {
		t.Fatalf("esperava 1 membro, veio %d", len(out))
	}
	m := out[0]
	if m.ID != 4 || m.ProjetoID != 1 || m.PrestadorID != 2 {
		t.Errorf("identificadores errados: %+v", m)
	}
	if m.Tipo != calculofolha.TipoPercentual {
		t.Errorf("tipo = %q, esperava %q", m.Tipo, calculofolha.TipoPercentual)
	}
	if !m.Percentual.Equal(dec("30")) {
		t.Errorf("percentual = %s, esperava 30", m.Percentual)
	}
}

func TestMapearProjetosEPagamentos(t *testing.T) {
	projetos := MapearProjetos([]projeto.Projeto{
		{Model: gorm.Model{ID: 1}, OrcamentoTotal: dec("1000000")},
	})
	if len(projetos) != 1 || !projetos[0].OrcamentoTotal.Equal(dec("1000000")) {
		t.Fatalf("mapeamento de projeto errado: %+v", projetos)
	}

	quando := data(2026, time.March, 10)
	pagamentos := MapearPagamentos([]pagamento.Pagamento{
		{Model: gorm.Model{ID: 9}, ProjetoID: 1, PrestadorID: 2, Valor: dec("500.25"), DataPagamento: quando},
	})
	if len(pagamentos) != 1 {
		t.Fatalf("esperava 1 pagamento, veio %d", len(pagamentos))
	}
	if !pagamentos[0].Valor.Equal(dec("500.25")) || !pagamentos[0].Data.Equal(quando) {
		t.Errorf("mapeamento de pagamento errado: %+v", pagamentos[0])
	}
}

func snapshotDeTeste() Snapshot {
	return Snapshot{
		Projetos: []calculofolha.Projeto{
			{ID: 1, OrcamentoTotal: dec("1000000")},
			{ID: 2, OrcamentoTotal: dec("500000")},
		},
		Membros: []calculofolha.Membro{
			{ID: 1, ProjetoID: 1, PrestadorID: 10, Tipo: calculofolha.TipoPercentual, Percentual: dec("30")},
			{ID: 2, ProjetoID: 2, PrestadorID: 20, Tipo: calculofolha.TipoValorFixo, ValorAcordado: dec("150000")},
		},
		Pagamentos: []calculofolha.Pagamento{
			{ID: 1, ProjetoID: 1, PrestadorID: 10, Valor: dec("100000"), Data: data(2026, time.January, 15)},
			{ID: 2, ProjetoID: 2, PrestadorID: 20, Valor: dec("50000"), Data: data(2026, time.February, 15)},
		},
		Despesas: []calculofolha.Despesa{
			{ID: 1, ProjetoID: 1, Valor: dec("25000"), Data: data(2026, time.January, 20)},
			{ID: 2, ProjetoID: 2, Valor: dec("10000"), Data: data(2026, time.March, 1)},
		},
	}
}

func TestFiltrarPorProjeto(t *testing.T) {
	id := uint(1)
	out := snapshotDeTeste().Filtrar(calculofolha.Filtro{ProjetoID: &id})

	if len(out.Projetos) != 1 || out.Projetos[0].ID != 1 {
		t.Errorf("projetos filtrados errados: %+v", out.Projetos)
	}
	if len(out.Membros) != 1 || out.Membros[0].ProjetoID != 1 {
		t.Errorf("membros filtrados errados: %+v", out.Membros)
	}
	if len(out.Pagamentos) != 1 || len(out.Despesas) != 1 {
		t.Errorf("pagamentos/despesas filtrados errados: %d/%d", len(out.Pagamentos), len(out.Despesas))
	}
}

func TestFiltrarPorPeriodoIncluiAsPontas(t *testing.T) {
	inicio := data(2026, time.January, 15)
	fim := data(2026, time.February, 15)
	out := snapshotDeTeste().Filtrar(calculofolha.Filtro{Inicio: &inicio, Fim: &fim})

	if len(out.Pagamentos) != 2 {
		t.Errorf("pagamentos nas pontas do período deveriam entrar, veio %d", len(out.Pagamentos))
	}
	if len(out.Despesas) != 1 || out.Despesas[0].ID != 1 {
		t.Errorf("despesas filtradas erradas: %+v", out.Despesas)
	}
	// orçamento não é rateado por data
	if len(out.Projetos) != 2 {
		t.Errorf("filtro de data não deveria remover projetos, veio %d", len(out.Projetos))
	}
}

func TestFiltrarPorPrestadorNaoTocaDespesas(t *testing.T) {
	id := uint(10)
	out := snapshotDeTeste().Filtrar(calculofolha.Filtro{PrestadorID: &id})

	if len(out.Membros) != 1 || out.Membros[0].PrestadorID != 10 {
		t.Errorf("membros filtrados errados: %+v", out.Membros)
	}
	if len(out.Pagamentos) != 1 || out.Pagamentos[0].PrestadorID != 10 {
		t.Errorf("pagamentos filtrados errados: %+v", out.Pagamentos)
	}
	// despesa é do projeto, não do prestador
	if len(out.Despesas) != 2 {
		t.Errorf("filtro de prestador não deveria remover despesas, veio %d", len(out.Despesas))
	}
}
