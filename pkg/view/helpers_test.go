package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFromCents(t *testing.T) {
	tests := []struct {
		cents    int64
		currency string
		want     string
	}{
		{12000, "USD", "$120.00"},
		{23000, "USD", "$230.00"},
		{5, "EUR", "€0.05"},
		{0, "USD", "$0.00"},
		{-150, "GBP", "-£1.50"},
		{999, "CHF", "CHF 9.99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MoneyFromCents(tt.cents, tt.currency))
	}
}
