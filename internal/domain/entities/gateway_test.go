package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewInstallmentOption(t *testing.T) {
	total := decimal.RequireFromString("80.00")

	t.Run("single installment equals original amount", func(t *testing.T) {
		opt := NewInstallmentOption(1, total)
		if !opt.InstallmentAmount.Equal(total) {
			t.Fatalf("expected %s, got %s", total, opt.InstallmentAmount)
		}
		if opt.Message != "1x de R$ 80.00" {
			t.Fatalf("unexpected message %q", opt.Message)
		}
	})

	t.Run("totals stay within rounding tolerance", func(t *testing.T) {
		for _, n := range []int{1, 2, 3, 6, 12} {
			opt := NewInstallmentOption(n, total)
			sum := opt.InstallmentAmount.Mul(decimal.NewFromInt(int64(n)))
			drift := sum.Sub(total).Abs()
			tolerance := decimal.RequireFromString("0.01").Mul(decimal.NewFromInt(int64(n)))
			if drift.GreaterThan(tolerance) {
				t.Fatalf("%dx: sum %s drifts %s from total %s", n, sum, drift, total)
			}
		}
	})

	t.Run("message derived from numeric fields", func(t *testing.T) {
		opt := NewInstallmentOption(3, total)
		want := "3x de R$ " + opt.InstallmentAmount.StringFixed(2)
		if opt.Message != want {
			t.Fatalf("expected %q, got %q", want, opt.Message)
		}
	})
}

func TestGatewayConfig_Matching(t *testing.T) {
	cfg := GatewayConfig{
		EntityTypes:    []EntityType{EntityTypeEventRegistration},
		AllowedMethods: []PaymentMethod{PaymentMethodPix, PaymentMethodBoleto},
		Credentials:    map[string]string{CredentialAccessToken: "tok"},
	}

	if !cfg.SupportsEntityType(EntityTypeEventRegistration) {
		t.Fatal("expected entity type to match")
	}
	if cfg.SupportsEntityType(EntityTypeClub) {
		t.Fatal("expected club to not match")
	}
	if !cfg.AllowsMethod(PaymentMethodPix) {
		t.Fatal("expected pix to be allowed")
	}
	if cfg.AllowsMethod(PaymentMethodCreditCard) {
		t.Fatal("expected credit card to be denied")
	}
	if cfg.Credential(CredentialAccessToken) != "tok" {
		t.Fatal("expected credential lookup to work")
	}
	if cfg.Credential(CredentialWebhookSecret) != "" {
		t.Fatal("expected missing credential to be empty")
	}

	open := GatewayConfig{}
	if !open.AllowsMethod(PaymentMethodCreditCard) {
		t.Fatal("empty allow-list must allow all methods")
	}
	if open.Credential(CredentialAccessToken) != "" {
		t.Fatal("nil credentials must be empty")
	}
}
