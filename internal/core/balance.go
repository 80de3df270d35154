package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ApplyRunningBalances returns a copy of txs sorted ascending by date with
// RunningBalance set on every entry. Only completed transactions contribute
// their amount; pending and failed entries carry the prior balance forward
// unchanged. Equal dates keep their original input order.
func ApplyRunningBalances(txs []Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	balance := decimal.Zero
	for i := range out {
		if out[i].Status == StatusCompleted {
			balance = balance.Add(out[i].Amount)
		}
		out[i].RunningBalance = balance
	}
	return out
}

// Derived payment-method labels.
const (
	MethodInterest     = "Interest Payment"
	MethodController   = "Controller Transfer"
	MethodMobileMoney  = "Mobile Money"
	MethodBankTransfer = "Bank Transfer"
	MethodOther        = "Other"
)

// MethodLabel classifies a transaction into its reporting label. Type takes
// precedence over the declared payment method.
func MethodLabel(tx Transaction) string {
	switch {
	case tx.Type == TxInterest:
		return MethodInterest
	case tx.Type == TxControllerTransfer:
		return MethodController
	case tx.Type == TxMobileMoney || tx.PaymentMethod == "mobile-money":
		return MethodMobileMoney
	case tx.Type == TxDeposit:
		return MethodBankTransfer
	default:
		return MethodOther
	}
}

// MethodSummary is one line of the payment-methods section.
type MethodSummary struct {
	Label   string
	Amount  decimal.Decimal
	Percent string // formatted share of total contributions, or "N/A"
}

// SummarizePaymentMethods groups completed transactions by derived method
// label, sums amounts per label, and expresses each as a share of
// totalContributions. A zero total yields "N/A" shares rather than a division
// error. Results are ordered by descending amount, then label.
func SummarizePaymentMethods(txs []Transaction, totalContributions decimal.Decimal) []MethodSummary {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Status != StatusCompleted {
			continue
		}
		label := MethodLabel(tx)
		sums[label] = sums[label].Add(tx.Amount)
	}

	out := make([]MethodSummary, 0, len(sums))
	for label, amount := range sums {
		out = append(out, MethodSummary{
			Label:   label,
			Amount:  amount,
			Percent: FormatPercent(amount, totalContributions),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Label < out[j].Label
	})
	return out
}
