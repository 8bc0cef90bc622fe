package calculofolha

import (
	"reflect"
	"testing"
	"time"
)

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

// Cenário de ponta a ponta: projeto A com orçamento 1.000.000, prestador
// X a 30% e prestador Y com valor fixo de 150.000; pagos 100.000 a X e
// 150.000 a Y; despesas de 50.000.
func cenarioProjetoA() ([]Projeto, []Membro, []Pagamento, []Despesa) {
	projetos := []Projeto{{ID: 1, OrcamentoTotal: dec("1000000")}}
	membros := []Membro{
		{ID: 1, ProjetoID: 1, PrestadorID: 10, Tipo: TipoPercentual, Percentual: dec("30")},
		{ID: 2, ProjetoID: 1, PrestadorID: 20, Tipo: TipoValorFixo, ValorAcordado: dec("150000")},
	}
	pagamentos := []Pagamento{
		{ID: 1, ProjetoID: 1, PrestadorID: 10, Valor: dec("100000"), Data: data(2026, time.March, 10)},
		{ID: 2, ProjetoID: 1, PrestadorID: 20, Valor: dec("150000"), Data: data(2026, time.March, 20)},
	}
	despesas := []Despesa{
		{ID: 1, ProjetoID: 1, Valor: dec("50000"), Data: data(2026, time.March, 15)},
	}
	return projetos, membros, pagamentos, despesas
}

func TestResumoPorPrestador_CenarioCompleto(t *testing.T) {
	projetos, membros, pagamentos, _ := cenarioProjetoA()

	resumos := ResumoPorPrestador(membros, projetos, pagamentos)
	if len(resumos) != 2 {
		t.Fatalf("esperava 2 prestadores, veio %d", len(resumos))
	}

	porID := map[uint]ResumoPrestador{}
	for _, r := range resumos {
		porID[r.PrestadorID] = r
	}

	x := porID[10]
	if !x.ValorDevido.Equal(dec("300000")) || !x.TotalPago.Equal(dec("100000")) || !x.Saldo.Equal(dec("200000")) {
		t.Fatalf("prestador X: %+v", x)
	}
	y := porID[20]
	if !y.ValorDevido.Equal(dec("150000")) || !y.TotalPago.Equal(dec("150000")) || !y.Saldo.IsZero() {
		t.Fatalf("prestador Y: %+v", y)
	}
	if x.AtribuicoesComPagamento != 1 || y.AtribuicoesComPagamento != 1 {
		t.Fatalf("contagem de atribuições pagas: X=%d Y=%d", x.AtribuicoesComPagamento, y.AtribuicoesComPagamento)
	}
}

func TestResumoPorPrestador_ExcluiLinhasVazias(t *testing.T) {
	projetos := []Projeto{{ID: 1, OrcamentoTotal: dec("1000")}}
	membros := []Membro{
		{ID: 1, ProjetoID: 1, PrestadorID: 10, Tipo: TipoValorFixo, ValorAcordado: dec("0")},
		{ID: 2, ProjetoID: 1, PrestadorID: 20, Tipo: TipoValorFixo, ValorAcordado: dec("100")},
	}

	resumos := ResumoPorPrestador(membros, projetos, nil)
	if len(resumos) != 1 || resumos[0].PrestadorID != 20 {
		t.Fatalf("esperava só o prestador 20, veio %+v", resumos)
	}
}

func TestResumoPorPrestador_AtribuicaoOrfaContribuiZero(t *testing.T) {
	// membro aponta para projeto fora do snapshot; entra com devido 0,
	// sem erro
	membros := []Membro{
		{ID: 1, ProjetoID: 77, PrestadorID: 10, Tipo: TipoPercentual, Percentual: dec("50")},
	}
	pagamentos := []Pagamento{
		{ProjetoID: 77, PrestadorID: 10, Valor: dec("30")},
	}

	resumos := ResumoPorPrestador(membros, nil, pagamentos)
	if len(resumos) != 1 {
		t.Fatalf("esperava 1 resumo, veio %d", len(resumos))
	}
	r := resumos[0]
	if !r.ValorDevido.IsZero() || !r.TotalPago.Equal(dec("30")) {
		t.Fatalf("resumo órfão: %+v", r)
	}
}

func TestResumoPorProjeto_LucroESinal(t *testing.T) {
	projetos, membros, pagamentos, despesas := cenarioProjetoA()

	resumos := ResumoPorProjeto(projetos, membros, pagamentos, despesas)
	if len(resumos) != 1 {
		t.Fatalf("esperava 1 projeto, veio %d", len(resumos))
	}
	r := resumos[0]
	if !r.ValorDevido.Equal(dec("450000")) {
		t.Fatalf("devido = %s, esperava 450000", r.ValorDevido)
	}
	if !r.TotalPago.Equal(dec("250000")) {
		t.Fatalf("pago = %s, esperava 250000", r.TotalPago)
	}
	if !r.Despesas.Equal(dec("50000")) {
		t.Fatalf("despesas = %s, esperava 50000", r.Despesas)
	}
	if !r.Lucro.Equal(dec("500000")) {
		t.Fatalf("lucro = %s, esperava 500000", r.Lucro)
	}
}

func TestResumoPorProjeto_LucroNegativoNaoELimitado(t *testing.T) {
	projetos := []Projeto{{ID: 1, OrcamentoTotal: dec("1000000")}}
	membros := []Membro{
		{ID: 1, ProjetoID: 1, PrestadorID: 10, Tipo: TipoValorFixo, ValorAcordado: dec("1200000")},
	}
	despesas := []Despesa{{ProjetoID: 1, Valor: dec("100000"), Data: data(2026, time.January, 1)}}

	resumos := ResumoPorProjeto(projetos, membros, nil, despesas)
	if !resumos[0].Lucro.Equal(dec("-300000")) {
		t.Fatalf("lucro = %s, esperava -300000", resumos[0].Lucro)
	}
}

func TestResumoPorProjeto_IgnoraRegistrosOrfaos(t *testing.T) {
	projetos := []Projeto{{ID: 1, OrcamentoTotal: dec("1000")}}
	pagamentos := []Pagamento{
		{ProjetoID: 1, PrestadorID: 10, Valor: dec("100")},
		{ProjetoID: 99, PrestadorID: 10, Valor: dec("999")}, // projeto removido
	}
	despesas := []Despesa{
		{ProjetoID: 99, Valor: dec("500")},
	}

	resumos := ResumoPorProjeto(projetos, nil, pagamentos, despesas)
	r := resumos[0]
	if !r.TotalPago.Equal(dec("100")) || !r.Despesas.IsZero() {
		t.Fatalf("registros órfãos vazaram para o resumo: %+v", r)
	}
}

func TestResumoDaAgencia_SemFiltro(t *testing.T) {
	projetos, membros, pagamentos, despesas := cenarioProjetoA()

	r := ResumoDaAgencia(projetos, membros, pagamentos, despesas, Filtro{})
	if !r.Orcamento.Equal(dec("1000000")) || !r.ValorDevido.Equal(dec("450000")) ||
		!r.TotalPago.Equal(dec("250000")) || !r.Despesas.Equal(dec("50000")) {
		t.Fatalf("resumo da agência: %+v", r)
	}
	if !r.Lucro.Equal(dec("500000")) {
		t.Fatalf("lucro = %s, esperava 500000", r.Lucro)
	}
	if !r.Pendente.Equal(dec("200000")) {
		t.Fatalf("pendente = %s, esperava 200000", r.Pendente)
	}
}

func TestResumoDaAgencia_PendenteLimitadoEmZero(t *testing.T) {
	projetos := []Projeto{{ID: 1, OrcamentoTotal: dec("100")}}
	membros := []Membro{{ProjetoID: 1, PrestadorID: 10, Tipo: TipoValorFixo, ValorAcordado: dec("100")}}
	pagamentos := []Pagamento{{ProjetoID: 1, PrestadorID: 10, Valor: dec("150"), Data: data(2026, time.May, 1)}}

	r := ResumoDaAgencia(projetos, membros, pagamentos, nil, Filtro{})
	if !r.Pendente.IsZero() {
		t.Fatalf("pendente = %s, esperava 0 com pagamento a maior", r.Pendente)
	}
}

func TestResumoDaAgencia_FiltroPorProjeto(t *testing.T) {
	projetos := []Projeto{
		{ID: 1, OrcamentoTotal: dec("1000")},
		{ID: 2, OrcamentoTotal: dec("2000")},
	}
	membros := []Membro{
		{ProjetoID: 1, PrestadorID: 10, Tipo: TipoValorFixo, ValorAcordado: dec("400")},
		{ProjetoID: 2, PrestadorID: 10, Tipo: TipoValorFixo, ValorAcordado: dec("800")},
	}
	pagamentos := []Pagamento{
		{ProjetoID: 1, PrestadorID: 10, Valor: dec("100"), Data: data(2026, time.April, 1)},
		{ProjetoID: 2, PrestadorID: 10, Valor: dec("200"), Data: data(2026, time.April, 2)},
	}
	despesas := []Despesa{
		{ProjetoID: 1, Valor: dec("50"), Data: data(2026, time.April, 3)},
		{ProjetoID: 2, Valor: dec("60"), Data: data(2026, time.April, 4)},
	}

	total := ResumoDaAgencia(projetos, membros, pagamentos, despesas, Filtro{})
	id2 := uint(2)
	so2 := ResumoDaAgencia(projetos, membros, pagamentos, despesas, Filtro{ProjetoID: &id2})

	// o filtrado bate com o total menos a contribuição do projeto 1
	if !so2.Orcamento.Equal(total.Orcamento.Sub(dec("1000"))) {
		t.Fatalf("orcamento filtrado = %s", so2.Orcamento)
	}
	if !so2.ValorDevido.Equal(total.ValorDevido.Sub(dec("400"))) {
		t.Fatalf("devido filtrado = %s", so2.ValorDevido)
	}
	if !so2.TotalPago.Equal(total.TotalPago.Sub(dec("100"))) {
		t.Fatalf("pago filtrado = %s", so2.TotalPago)
	}
	if !so2.Despesas.Equal(total.Despesas.Sub(dec("50"))) {
		t.Fatalf("despesas filtradas = %s", so2.Despesas)
	}
}

func TestResumoDaAgencia_PeriodoInclusivoNasDuasPontas(t *testing.T) {
	projetos := []Projeto{{ID: 1, OrcamentoTotal: dec("1000")}}
	pagamentos := []Pagamento{
		{ProjetoID: 1, PrestadorID: 10, Valor: dec("10"), Data: data(2026, time.May, 1)},
		{ProjetoID: 1, PrestadorID: 10, Valor: dec("20"), Data: data(2026, time.May, 15)},
		{ProjetoID: 1, PrestadorID: 10, Valor: dec("40"), Data: data(2026, time.May, 31)},
		{ProjetoID: 1, PrestadorID: 10, Valor: dec("80"), Data: data(2026, time.June, 1)},
	}

	inicio := data(2026, time.May, 1)
	fim := data(2026, time.May, 31)
	r := ResumoDaAgencia(projetos, nil, pagamentos, nil, Filtro{Inicio: &inicio, Fim: &fim})

	if !r.TotalPago.Equal(dec("70")) {
		t.Fatalf("pago no período = %s, esperava 70 (pontas inclusivas)", r.TotalPago)
	}
}

func TestResumos_Idempotentes(t *testing.T) {
	projetos, membros, pagamentos, despesas := cenarioProjetoA()

	a := ResumoDaAgencia(projetos, membros, pagamentos, despesas, Filtro{})
	b := ResumoDaAgencia(projetos, membros, pagamentos, despesas, Filtro{})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("resumo da agência não idempotente:\n%+v\n%+v", a, b)
	}

	p1 := ResumoPorProjeto(projetos, membros, pagamentos, despesas)
	p2 := ResumoPorProjeto(projetos, membros, pagamentos, despesas)
	if !reflect.DeepEqual(p1, p2) {
		t.Fatalf("resumo por projeto não idempotente")
	}
}
