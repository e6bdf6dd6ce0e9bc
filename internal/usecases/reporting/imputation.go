package reporting

import "github.com/shopspring/decimal"

// Fatores de margem por faixa de preço, usados para estimar o preço de compra
// de produtos cadastrados com custo zero
var (
	lowTierLimit = decimal.NewFromInt(1)
	midTierLimit = decimal.NewFromInt(2)

	lowTierFactor  = decimal.NewFromFloat(0.69)
	midTierFactor  = decimal.NewFromFloat(0.75)
	highTierFactor = decimal.NewFromFloat(0.80)
)

// ImputeCostPrice estima o preço de compra a partir do preço de venda. É
// aplicada somente quando o custo cadastrado é exatamente zero ("desconhecido"):
// um custo não-zero é usado como está, mesmo que pareça implausível
func ImputeCostPrice(salePrice decimal.Decimal) decimal.Decimal {
	switch {
	case salePrice.LessThanOrEqual(lowTierLimit):
		return salePrice.Mul(lowTierFactor)
	case salePrice.LessThanOrEqual(midTierLimit):
		return salePrice.Mul(midTierFactor)
	default:
		return salePrice.Mul(highTierFactor)
	}
}
