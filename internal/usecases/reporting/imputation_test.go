package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestImputeCostPrice(t *testing.T) {
	tests := []struct {
		name      string
		salePrice string
		expected  string
	}{
		{"Faixa baixa aplica fator 0.69", "0.50", "0.345"},
		{"Limite da faixa baixa é inclusivo", "1.00", "0.69"},
		{"Logo acima do limite baixo cai na faixa média", "1.01", "0.7575"},
		{"Limite da faixa média é inclusivo", "2.00", "1.5"},
		{"Acima da faixa média aplica fator 0.80", "2.01", "1.608"},
		{"Preço alto", "10.00", "8"},
		{"Preço zero permanece zero", "0.00", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salePrice := decimal.RequireFromString(tt.salePrice)
			expected := decimal.RequireFromString(tt.expected)

			result := ImputeCostPrice(salePrice)
			assert.True(t, expected.Equal(result), "esperado %s, obtido %s", expected, result)
		})
	}
}
