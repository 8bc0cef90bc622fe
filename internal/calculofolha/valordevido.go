package calculofolha

import "github.com/shopspring/decimal"

var cem = decimal.NewFromInt(100)

// ValorDevido calcula quanto o prestador tem a receber pela atribuição.
// Com TipoValorFixo devolve ValorAcordado; com TipoPercentual devolve
// orçamento * percentual / 100. Projeto nulo (atribuição órfã) devolve
// zero em vez de erro, para nunca derrubar um resumo.
//
// Percentuais fora de 0–100 não são rejeitados aqui: validação é
// responsabilidade da camada de entrada de dados. Nenhum arredondamento
// é aplicado; formatação de moeda é assunto da apresentação.
func ValorDevido(m Membro, p *Projeto) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	switch m.Tipo {
	case TipoValorFixo:
		return m.ValorAcordado
	case TipoPercentual:
		return p.OrcamentoTotal.Mul(m.Percentual).Div(cem)
	default:
		return decimal.Zero
	}
}
