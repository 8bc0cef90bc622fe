package calculofolha

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResumoPrestador agrega a situação financeira de um prestador em todos
// os projetos em que aparece.
type ResumoPrestador struct {
	PrestadorID uint            `json:"prestadorId"`
	ValorDevido decimal.Decimal `json:"valorDevido"`
	TotalPago   decimal.Decimal `json:"totalPago"`
	Saldo       decimal.Decimal `json:"saldo"`
	// AtribuicoesComPagamento conta as atribuições do prestador que já
	// receberam ao menos um pagamento.
	AtribuicoesComPagamento int `json:"atribuicoesComPagamento"`
}

// ResumoProjeto agrega orçamento, folha, despesas e lucro de um projeto.
type ResumoProjeto struct {
	ProjetoID   uint            `json:"projetoId"`
	Orcamento   decimal.Decimal `json:"orcamento"`
	ValorDevido decimal.Decimal `json:"valorDevido"`
	TotalPago   decimal.Decimal `json:"totalPago"`
	Despesas    decimal.Decimal `json:"despesas"`
	// Lucro = orçamento - devido - despesas. Pode ser negativo; prejuízo
	// é resultado válido, não erro.
	Lucro decimal.Decimal `json:"lucro"`
}

// ResumoAgencia agrega os totais da agência inteira, após filtros.
type ResumoAgencia struct {
	Orcamento   decimal.Decimal `json:"orcamento"`
	ValorDevido decimal.Decimal `json:"valorDevido"`
	TotalPago   decimal.Decimal `json:"totalPago"`
	Despesas    decimal.Decimal `json:"despesas"`
	Lucro       decimal.Decimal `json:"lucro"`
	// Pendente = max(devido - pago, 0).
	Pendente decimal.Decimal `json:"pendente"`
}

// Filtro restringe o resumo da agência. Campos nulos significam
// "sem filtro nessa dimensão". Datas são inclusivas nas duas pontas e
// valem para pagamentos e despesas.
type Filtro struct {
	Inicio      *time.Time
	Fim         *time.Time
	ProjetoID   *uint
	PrestadorID *uint
}

func (f Filtro) aceitaData(d time.Time) bool {
	if f.Inicio != nil && d.Before(*f.Inicio) {
		return false
	}
	if f.Fim != nil && d.After(*f.Fim) {
		return false
	}
	return true
}

func (f Filtro) aceitaProjeto(id uint) bool {
	return f.ProjetoID == nil || *f.ProjetoID == id
}

func (f Filtro) aceitaPrestador(id uint) bool {
	return f.PrestadorID == nil || *f.PrestadorID == id
}

// ResumoPorPrestador agrupa as atribuições por prestador e soma devido,
// pago e saldo. Prestadores com devido e pago ambos zero ficam de fora,
// para não poluir o relatório com linhas vazias. Sem garantia de ordem
// na saída; quem exibe ordena.
func ResumoPorPrestador(membros []Membro, projetos []Projeto, pagamentos []Pagamento) []ResumoPrestador {
	idx := indexarProjetos(projetos)
	totais := TotaisPorPar(pagamentos)

	porPrestador := make(map[uint]*ResumoPrestador)
	for _, m := range membros {
		r, ok := porPrestador[m.PrestadorID]
		if !ok {
			r = &ResumoPrestador{
				PrestadorID: m.PrestadorID,
				ValorDevido: decimal.Zero,
				TotalPago:   decimal.Zero,
				Saldo:       decimal.Zero,
			}
			porPrestador[m.PrestadorID] = r
		}

		devido := ValorDevido(m, idx[m.ProjetoID])
		pago := totais[Par{ProjetoID: m.ProjetoID, PrestadorID: m.PrestadorID}]

		r.ValorDevido = r.ValorDevido.Add(devido)
		r.TotalPago = r.TotalPago.Add(pago)
		r.Saldo = r.Saldo.Add(devido.Sub(pago))
		if pago.Sign() > 0 {
			r.AtribuicoesComPagamento++
		}
	}

	resumos := make([]ResumoPrestador, 0, len(porPrestador))
	for _, r := range porPrestador {
		if r.ValorDevido.IsZero() && r.TotalPago.IsZero() {
			continue
		}
		resumos = append(resumos, *r)
	}
	return resumos
}

// ResumoPorProjeto produz, para cada projeto, a soma do valor devido das
// suas atribuições, o total pago, as despesas e o lucro resultante.
// Pagamentos e despesas apontando para projetos ausentes do snapshot são
// ignorados em silêncio: integridade referencial parcial é esperada e
// não pode derrubar o relatório.
func ResumoPorProjeto(projetos []Projeto, membros []Membro, pagamentos []Pagamento, despesas []Despesa) []ResumoProjeto {
	idx := indexarProjetos(projetos)

	porProjeto := make(map[uint]*ResumoProjeto, len(projetos))
	resumos := make([]ResumoProjeto, 0, len(projetos))
	for _, p := range projetos {
		resumos = append(resumos, ResumoProjeto{
			ProjetoID:   p.ID,
			Orcamento:   p.OrcamentoTotal,
			ValorDevido: decimal.Zero,
			TotalPago:   decimal.Zero,
			Despesas:    decimal.Zero,
		})
	}
	for i := range resumos {
		porProjeto[resumos[i].ProjetoID] = &resumos[i]
	}

	for _, m := range membros {
		r, ok := porProjeto[m.ProjetoID]
		if !ok {
			continue
		}
		r.ValorDevido = r.ValorDevido.Add(ValorDevido(m, idx[m.ProjetoID]))
	}
	for _, pg := range pagamentos {
		r, ok := porProjeto[pg.ProjetoID]
		if !ok {
			continue
		}
		r.TotalPago = r.TotalPago.Add(pg.Valor)
	}
	for _, d := range despesas {
		r, ok := porProjeto[d.ProjetoID]
		if !ok {
			continue
		}
		r.Despesas = r.Despesas.Add(d.Valor)
	}

	for i := range resumos {
		r := &resumos[i]
		r.Lucro = r.Orcamento.Sub(r.ValorDevido).Sub(r.Despesas)
	}
	return resumos
}

// ResumoDaAgencia aplica os filtros opcionais e então agrega os totais
// da agência: orçamento dos projetos filtrados, valor devido, pagamentos
// e despesas dentro do período, lucro e pendência.
func ResumoDaAgencia(projetos []Projeto, membros []Membro, pagamentos []Pagamento, despesas []Despesa, filtro Filtro) ResumoAgencia {
	idx := indexarProjetos(projetos)

	resumo := ResumoAgencia{
		Orcamento:   decimal.Zero,
		ValorDevido: decimal.Zero,
		TotalPago:   decimal.Zero,
		Despesas:    decimal.Zero,
	}

	for _, p := range projetos {
		if !filtro.aceitaProjeto(p.ID) {
			continue
		}
		resumo.Orcamento = resumo.Orcamento.Add(p.OrcamentoTotal)
	}

	for _, m := range membros {
		if !filtro.aceitaProjeto(m.ProjetoID) || !filtro.aceitaPrestador(m.PrestadorID) {
			continue
		}
		resumo.ValorDevido = resumo.ValorDevido.Add(ValorDevido(m, idx[m.ProjetoID]))
	}

	for _, pg := range pagamentos {
		if !filtro.aceitaProjeto(pg.ProjetoID) || !filtro.aceitaPrestador(pg.PrestadorID) {
			continue
		}
		if _, ok := idx[pg.ProjetoID]; !ok {
			// pagamento de projeto já removido: fora da soma
			continue
		}
		if !filtro.aceitaData(pg.Data) {
			continue
		}
		resumo.TotalPago = resumo.TotalPago.Add(pg.Valor)
	}

	for _, d := range despesas {
		if !filtro.aceitaProjeto(d.ProjetoID) {
			continue
		}
		if _, ok := idx[d.ProjetoID]; !ok {
			continue
		}
		if !filtro.aceitaData(d.Data) {
			continue
		}
		resumo.Despesas = resumo.Despesas.Add(d.Valor)
	}

	resumo.Lucro = resumo.Orcamento.Sub(resumo.ValorDevido).Sub(resumo.Despesas)
	resumo.Pendente = decimal.Max(resumo.ValorDevido.Sub(resumo.TotalPago), decimal.Zero)
	return resumo
}
