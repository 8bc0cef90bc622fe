package utils

import "testing"

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	if err != nil {
		t.Fatalf("HashSenha: %v", err)
	}
	if hash == "segredo123" {
		t.Fatal("hash igual à senha em texto")
	}
	if !VerificarSenha(hash, "segredo123") {
		t.Fatal("senha correta não verificou")
	}
	if VerificarSenha(hash, "outra") {
		t.Fatal("senha errada verificou")
	}
}

func TestGerarSenhaTemporaria(t *testing.T) {
	a, err := GerarSenhaTemporaria()
	if err != nil {
		t.Fatalf("GerarSenhaTemporaria: %v", err)
	}
	if len(a) != 12 {
		t.Fatalf("tamanho = %d, esperava 12", len(a))
	}
	b, _ := GerarSenhaTemporaria()
	if a == b {
		t.Fatal("duas senhas temporárias idênticas")
	}
}
