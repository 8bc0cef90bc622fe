package calculofolha

import "testing"

func TestReconciliar_FronteirasDeStatus(t *testing.T) {
	p := &Projeto{ID: 1, OrcamentoTotal: dec("1000000")}
	m := Membro{ProjetoID: 1, PrestadorID: 10, Tipo: TipoValorFixo, ValorAcordado: dec("100000")}

	casos := []struct {
		nome   string
		pago   string
		status string
	}{
		{"quitado exato", "100000", StatusPago},
		{"um centavo faltando", "99999.99", StatusParcial},
		{"meio centavo faltando", "99999.995", StatusPago},
		{"nada pago", "0", StatusPendente},
		{"pago a maior", "120000", StatusPago},
	}

	for _, c := range casos {
		var pagamentos []Pagamento
		if c.pago != "0" {
			pagamentos = []Pagamento{{ProjetoID: 1, PrestadorID: 10, Valor: dec(c.pago)}}
		}
		r := Reconciliar(m, p, pagamentos)
		if r.Status != c.status {
			t.Fatalf("%s: status = %q, esperava %q (saldo %s)", c.nome, r.Status, c.status, r.SaldoDevedor)
		}
	}
}

func TestReconciliar_SaldoNegativoNaoELimitado(t *testing.T) {
	p := &Projeto{ID: 1, OrcamentoTotal: dec("0")}
	m := Membro{ProjetoID: 1, PrestadorID: 10, Tipo: TipoValorFixo, ValorAcordado: dec("100")}
	pagamentos := []Pagamento{{ProjetoID: 1, PrestadorID: 10, Valor: dec("150")}}

	r := Reconciliar(m, p, pagamentos)
	if !r.SaldoDevedor.Equal(dec("-50")) {
		t.Fatalf("saldo = %s, esperava -50 (pagamento a maior fica visível)", r.SaldoDevedor)
	}
	if r.Status != StatusPago {
		t.Fatalf("status = %q, esperava %q", r.Status, StatusPago)
	}
}

func TestReconciliar_CasoDegeneradoFicaPendente(t *testing.T) {
	// nada devido e nada pago: ainda aparece como Pendente nos
	// relatórios
	m := Membro{ProjetoID: 1, PrestadorID: 10, Tipo: TipoValorFixo, ValorAcordado: dec("0")}
	p := &Projeto{ID: 1, OrcamentoTotal: dec("1000")}

	r := Reconciliar(m, p, nil)
	if r.Status != StatusPendente {
		t.Fatalf("status = %q, esperava %q", r.Status, StatusPendente)
	}
	if !r.ValorDevido.IsZero() || !r.TotalPago.IsZero() || !r.SaldoDevedor.IsZero() {
		t.Fatalf("reconciliação degenerada não zerada: %+v", r)
	}
}

func TestReconciliar_ProjetoAusente(t *testing.T) {
	m := Membro{ProjetoID: 9, PrestadorID: 10, Tipo: TipoPercentual, Percentual: dec("30")}

	r := Reconciliar(m, nil, nil)
	if !r.ValorDevido.IsZero() {
		t.Fatalf("devido = %s, esperava 0 para projeto ausente", r.ValorDevido)
	}
	if r.Status != StatusPendente {
		t.Fatalf("status = %q, esperava %q", r.Status, StatusPendente)
	}
}

func TestReconciliar_IgnoraPagamentosDeOutroPar(t *testing.T) {
	p := &Projeto{ID: 1, OrcamentoTotal: dec("1000")}
	m := Membro{ProjetoID: 1, PrestadorID: 10, Tipo: TipoValorFixo, ValorAcordado: dec("500")}
	pagamentos := []Pagamento{
		{ProjetoID: 1, PrestadorID: 10, Valor: dec("200")},
		{ProjetoID: 1, PrestadorID: 20, Valor: dec("300")},
		{ProjetoID: 2, PrestadorID: 10, Valor: dec("400")},
	}

	r := Reconciliar(m, p, pagamentos)
	if !r.TotalPago.Equal(dec("200")) {
		t.Fatalf("pago = %s, esperava 200", r.TotalPago)
	}
	if r.Status != StatusParcial {
		t.Fatalf("status = %q, esperava %q", r.Status, StatusParcial)
	}
}
