package calculofolha

import "github.com/shopspring/decimal"

// TotaisPorPar soma Valor por par (projeto, prestador). Registros
// duplicados são transações legítimas distintas e entram todos na soma.
// O slice de entrada não é modificado.
func TotaisPorPar(pagamentos []Pagamento) map[Par]decimal.Decimal {
	totais := make(map[Par]decimal.Decimal)
	for _, pg := range pagamentos {
		chave := Par{ProjetoID: pg.ProjetoID, PrestadorID: pg.PrestadorID}
		totais[chave] = totais[chave].Add(pg.Valor)
	}
	return totais
}

// TotalDoPar soma os pagamentos de um único par projeto/prestador.
func TotalDoPar(pagamentos []Pagamento, projetoID, prestadorID uint) decimal.Decimal {
	total := decimal.Zero
	for _, pg := range pagamentos {
		if pg.ProjetoID == projetoID && pg.PrestadorID == prestadorID {
			total = total.Add(pg.Valor)
		}
	}
	return total
}
