package calculofolha

import "github.com/shopspring/decimal"

// Reconciliacao é o resultado da conferência de um par projeto/prestador.
type Reconciliacao struct {
	ValorDevido decimal.Decimal `json:"valorDevido"`
	TotalPago   decimal.Decimal `json:"totalPago"`
	// SaldoDevedor = devido - pago. Pode ser negativo (pagamento a
	// maior); quem exibe "saldo a pagar" ao usuário final deve limitar
	// em zero na apresentação, nunca aqui.
	SaldoDevedor decimal.Decimal `json:"saldoDevedor"`
	// Status é derivado e consultivo: não sobrescreve o rótulo
	// persistido na atribuição. Sincronizar é decisão do chamador.
	Status string `json:"status"`
}

// Reconciliar combina valor devido e total pago de um par e classifica
// o status. Ordem de prioridade da classificação:
//  1. nada devido e nada pago -> Pendente (caso degenerado, mantido
//     visível nos relatórios);
//  2. nada pago -> Pendente;
//  3. saldo abaixo de Epsilon (menos de um centavo devido) -> Pago;
//  4. senão -> Parcial.
func Reconciliar(m Membro, p *Projeto, pagamentos []Pagamento) Reconciliacao {
	devido := ValorDevido(m, p)
	pago := TotalDoPar(pagamentos, m.ProjetoID, m.PrestadorID)
	saldo := devido.Sub(pago)

	return Reconciliacao{
		ValorDevido:  devido,
		TotalPago:    pago,
		SaldoDevedor: saldo,
		Status:       classificar(devido, pago, saldo),
	}
}

func classificar(devido, pago, saldo decimal.Decimal) string {
	switch {
	case devido.Sign() <= 0 && pago.Sign() == 0:
		return StatusPendente
	case pago.Sign() <= 0:
		return StatusPendente
	case saldo.LessThan(Epsilon):
		return StatusPago
	default:
		return StatusParcial
	}
}
