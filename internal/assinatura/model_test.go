package assinatura

import "testing"

func TestLimiteProjetos(t *testing.T) {
	casos := []struct {
		plano  string
		limite int
	}{
		{PlanoGratuito, 3},
		{PlanoProfissional, 25},
		{PlanoAgencia, -1},
		{"PlanoInventado", 3},
	}
	for _, c := range casos {
		if got := LimiteProjetos(c.plano); got != c.limite {
			t.Fatalf("LimiteProjetos(%q) = %d, esperava %d", c.plano, got, c.limite)
		}
	}
}

func TestPermiteNovoProjeto(t *testing.T) {
	ativa := &Assinatura{Plano: PlanoGratuito, Status: StatusAtiva}
	if !PermiteNovoProjeto(ativa, 2) {
		t.Fatal("Gratuito com 2 projetos deveria permitir o terceiro")
	}
	if PermiteNovoProjeto(ativa, 3) {
		t.Fatal("Gratuito com 3 projetos não deveria permitir o quarto")
	}

	ilimitada := &Assinatura{Plano: PlanoAgencia, Status: StatusAtiva}
	if !PermiteNovoProjeto(ilimitada, 10000) {
		t.Fatal("plano Agencia deveria ser ilimitado")
	}

	inadimplente := &Assinatura{Plano: PlanoAgencia, Status: StatusInadimplente}
	if PermiteNovoProjeto(inadimplente, 0) {
		t.Fatal("assinatura inadimplente não cria projetos")
	}

	// sem registro de assinatura vale o limite do Gratuito
	if !PermiteNovoProjeto(nil, 0) || PermiteNovoProjeto(nil, 3) {
		t.Fatal("sem assinatura deveria valer o limite do Gratuito")
	}
}
