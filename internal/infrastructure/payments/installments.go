package payments

import (
	"federapay/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// defaultInstallmentLadder is the fallback used when the provider's
// installment API is unavailable: equal division, no interest. Failing the
// whole payment flow over an installment lookup is never acceptable.
var defaultInstallmentLadder = []int{1, 2, 3, 6, 12}

func installmentLadder(amount decimal.Decimal, method entities.PaymentMethod) []entities.InstallmentOption {
	if !amount.IsPositive() {
		return nil
	}
	if !method.IsCard() {
		// PIX and boleto settle in a single charge.
		return []entities.InstallmentOption{entities.NewInstallmentOption(1, amount)}
	}

	opts := make([]entities.InstallmentOption, 0, len(defaultInstallmentLadder))
	for _, n := range defaultInstallmentLadder {
		opts = append(opts, entities.NewInstallmentOption(n, amount))
	}
	return opts
}
