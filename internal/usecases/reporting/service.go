package reporting

import (
	"time"

	"github.com/minimarket/backoffice-api/infrastructure/repository"
	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Service calcula o calendário de lucros diários a partir das linhas de venda.
// Todo o cálculo é local à requisição: nada é cacheado entre chamadas
type Service struct {
	saleLineRepository repository.SaleLineRepository
	location           *time.Location
	now                func() time.Time
}

func NewService(saleLineRepo repository.SaleLineRepository, loc *time.Location) ProfitReporter {
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		saleLineRepository: saleLineRepo,
		location:           loc,
		now:                time.Now,
	}
}

// ComputeProfitReport resolve o período, monta o esqueleto do mês inicial e
// acumula cada linha de venda dentro do período no bucket do seu dia. A fonte
// de dados não filtra por data: a filtragem acontece aqui, em memória
func (s *Service) ComputeProfitReport(filters *domain.ProfitFilters) ([]*domain.DailyProfit, error) {
	dateRange, err := resolveDateRange(filters, s.now().In(s.location), s.location)
	if err != nil {
		return nil, err
	}

	entries, err := s.saleLineRepository.ListAllWithSaleAndProduct()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar linhas de venda para o relatório de lucros")
		return nil, err
	}

	calendar := newMonthCalendar(dateRange.Start)

	matched := 0
	for _, entry := range entries {
		soldAt, err := ParseSaleTimestamp(entry.SoldAtRaw, s.location)
		if err != nil {
			// Sem resultados parciais: um timestamp malformado na origem
			// invalida o relatório inteiro
			return nil, err
		}

		if !dateRange.Contains(soldAt) {
			continue
		}

		costPrice := entry.UnitCostPrice
		if costPrice.IsZero() {
			costPrice = ImputeCostPrice(entry.UnitSalePrice)
		}

		quantity := decimal.NewFromInt(int64(entry.Quantity))
		gross := entry.UnitSalePrice.Mul(quantity)
		net := entry.UnitSalePrice.Sub(costPrice).Mul(quantity)

		calendar.add(soldAt.Format(time.DateOnly), gross, net)
		matched++
	}

	logrus.WithFields(logrus.Fields{
		"start_date":    dateRange.Start.Format(time.DateOnly),
		"end_date":      dateRange.End.Format(time.DateOnly),
		"total_lines":   len(entries),
		"matched_lines": matched,
	}).Debug("Relatório de lucros diários calculado")

	return calendar.entries(), nil
}
