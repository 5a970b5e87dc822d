package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/vendas-api/pkg/money"
)

func TestFormat(t *testing.T) {
	cases := map[string]string{
		"0":          "R$ 0,00",
		"10.5":       "R$ 10,50",
		"1000000":    "R$ 1.000.000,00",
		"99.999":     "R$ 100,00",
		"2.004":      "R$ 2,00",
		"1234567.89": "R$ 1.234.567,89",
	}
	for in, want := range cases {
		assert.Equal(t, want, money.Format(decimal.RequireFromString(in)), in)
	}
}
