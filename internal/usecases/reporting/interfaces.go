package reporting

import (
	"github.com/minimarket/backoffice-api/internal/domain"
)

// ProfitReporter define a interface do relatório de lucros diários
type ProfitReporter interface {
	// ComputeProfitReport monta o calendário de lucros brutos e líquidos por
	// dia para o período resolvido a partir dos filtros opcionais
	ComputeProfitReport(filters *domain.ProfitFilters) ([]*domain.DailyProfit, error)
}
