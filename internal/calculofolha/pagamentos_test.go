package calculofolha

import (
	"testing"
)

func TestTotaisPorPar_SomaPorPar(t *testing.T) {
	pagamentos := []Pagamento{
		{ID: 1, ProjetoID: 1, PrestadorID: 10, Valor: dec("100")},
		{ID: 2, ProjetoID: 1, PrestadorID: 10, Valor: dec("50.50")},
		{ID: 3, ProjetoID: 1, PrestadorID: 20, Valor: dec("30")},
		{ID: 4, ProjetoID: 2, PrestadorID: 10, Valor: dec("70")},
	}

	totais := TotaisPorPar(pagamentos)
	if got := totais[Par{1, 10}]; !got.Equal(dec("150.50")) {
		t.Fatalf("par (1,10) = %s, esperava 150.50", got)
	}
	if got := totais[Par{1, 20}]; !got.Equal(dec("30")) {
		t.Fatalf("par (1,20) = %s, esperava 30", got)
	}
	if got := totais[Par{2, 10}]; !got.Equal(dec("70")) {
		t.Fatalf("par (2,10) = %s, esperava 70", got)
	}

	if got := TotalDoPar(pagamentos, 1, 10); !got.Equal(dec("150.50")) {
		t.Fatalf("TotalDoPar(1,10) = %s, esperava 150.50", got)
	}
}

func TestTotaisPorPar_DuplicadosSaoTransacoesDistintas(t *testing.T) {
	// dois registros idênticos são dois pagamentos reais; nada de
	// deduplicação
	pagamentos := []Pagamento{
		{ProjetoID: 1, PrestadorID: 10, Valor: dec("25")},
		{ProjetoID: 1, PrestadorID: 10, Valor: dec("25")},
	}

	if got := TotalDoPar(pagamentos, 1, 10); !got.Equal(dec("50")) {
		t.Fatalf("total = %s, esperava 50", got)
	}
}

func TestTotalDoPar_MonotonicoAoAdicionar(t *testing.T) {
	pagamentos := []Pagamento{
		{ProjetoID: 1, PrestadorID: 10, Valor: dec("40")},
	}
	antes := TotalDoPar(pagamentos, 1, 10)

	pagamentos = append(pagamentos, Pagamento{ProjetoID: 1, PrestadorID: 10, Valor: dec("0")})
	pagamentos = append(pagamentos, Pagamento{ProjetoID: 1, PrestadorID: 10, Valor: dec("10")})
	depois := TotalDoPar(pagamentos, 1, 10)

	if depois.LessThan(antes) {
		t.Fatalf("total caiu de %s para %s ao adicionar pagamentos", antes, depois)
	}
	if !depois.Equal(dec("50")) {
		t.Fatalf("total = %s, esperava 50", depois)
	}
}

func TestTotaisPorPar_VazioNaoFalha(t *testing.T) {
	if totais := TotaisPorPar(nil); len(totais) != 0 {
		t.Fatalf("snapshot vazio devolveu %d pares", len(totais))
	}
	if got := TotalDoPar(nil, 1, 10); !got.IsZero() {
		t.Fatalf("snapshot vazio: total = %s, esperava 0", got)
	}
}

func TestTotaisPorPar_NaoAlteraEntrada(t *testing.T) {
	pagamentos := []Pagamento{
		{ID: 7, ProjetoID: 1, PrestadorID: 10, Valor: dec("12.34")},
	}
	_ = TotaisPorPar(pagamentos)
	_ = TotalDoPar(pagamentos, 1, 10)

	if pagamentos[0].ID != 7 || !pagamentos[0].Valor.Equal(dec("12.34")) {
		t.Fatalf("entrada foi modificada: %+v", pagamentos[0])
	}
}
