package reporting

import (
	"testing"
	"time"

	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseSaleTimestamp(t *testing.T) {
	loc, err := time.LoadLocation("America/Panama")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		raw      string
		expected time.Time
		hasError bool
	}{
		{
			name:     "Timestamp completo com zeros à esquerda",
			raw:      "04/05/2025, 14:30:00",
			expected: time.Date(2025, 4, 5, 14, 30, 0, 0, loc),
		},
		{
			name:     "Componentes sem zero à esquerda",
			raw:      "4/5/2025, 9:3:7",
			expected: time.Date(2025, 4, 5, 9, 3, 7, 0, loc),
		},
		{
			name:     "Espaços extras ao redor dos componentes",
			raw:      " 12/31/2024 ,  23:59:59 ",
			expected: time.Date(2024, 12, 31, 23, 59, 59, 0, loc),
		},
		{
			name:     "Meia-noite do primeiro dia do ano",
			raw:      "01/01/2025, 00:00:00",
			expected: time.Date(2025, 1, 1, 0, 0, 0, 0, loc),
		},
		{
			name:     "Separador de vírgula ausente",
			raw:      "04/05/2025 14:30:00",
			hasError: true,
		},
		{
			name:     "Data com dois componentes",
			raw:      "04/2025, 14:30:00",
			hasError: true,
		},
		{
			name:     "Hora com quatro componentes",
			raw:      "04/05/2025, 14:30:00:99",
			hasError: true,
		},
		{
			name:     "Componente não numérico",
			raw:      "abc/05/2025, 14:30:00",
			hasError: true,
		},
		{
			name:     "String vazia",
			raw:      "",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSaleTimestamp(tt.raw, loc)

			if tt.hasError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedTimestamp))
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expected.Equal(result))
			}
		})
	}
}

func TestResolveDateRange(t *testing.T) {
	loc, err := time.LoadLocation("America/Panama")
	assert.NoError(t, err)

	// Data de referência: 15 de abril de 2025
	now := time.Date(2025, 4, 15, 10, 0, 0, 0, loc)

	tests := []struct {
		name          string
		filters       *domain.ProfitFilters
		expectedStart time.Time
		expectedEnd   time.Time
		hasError      bool
	}{
		{
			name:          "Sem filtros usa o mês corrente inteiro",
			filters:       nil,
			expectedStart: time.Date(2025, 4, 1, 0, 0, 0, 0, loc),
			expectedEnd:   time.Date(2025, 4, 30, 23, 59, 59, 0, loc),
		},
		{
			name:          "Filtros vazios equivalem à ausência",
			filters:       &domain.ProfitFilters{},
			expectedStart: time.Date(2025, 4, 1, 0, 0, 0, 0, loc),
			expectedEnd:   time.Date(2025, 4, 30, 23, 59, 59, 0, loc),
		},
		{
			name:          "Início explícito, fim padrão",
			filters:       &domain.ProfitFilters{StartDate: "03/10/2025"},
			expectedStart: time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
			expectedEnd:   time.Date(2025, 4, 30, 23, 59, 59, 0, loc),
		},
		{
			name:          "Fim explícito, início padrão",
			filters:       &domain.ProfitFilters{EndDate: "04/20/2025"},
			expectedStart: time.Date(2025, 4, 1, 0, 0, 0, 0, loc),
			expectedEnd:   time.Date(2025, 4, 20, 23, 59, 59, 0, loc),
		},
		{
			name:          "Período explícito completo",
			filters:       &domain.ProfitFilters{StartDate: "02/01/2025", EndDate: "02/28/2025"},
			expectedStart: time.Date(2025, 2, 1, 0, 0, 0, 0, loc),
			expectedEnd:   time.Date(2025, 2, 28, 23, 59, 59, 0, loc),
		},
		{
			name:          "Período invertido é aceito sem erro",
			filters:       &domain.ProfitFilters{StartDate: "04/20/2025", EndDate: "04/01/2025"},
			expectedStart: time.Date(2025, 4, 20, 0, 0, 0, 0, loc),
			expectedEnd:   time.Date(2025, 4, 1, 23, 59, 59, 0, loc),
		},
		{
			name:     "Início malformado",
			filters:  &domain.ProfitFilters{StartDate: "2025-04-01"},
			hasError: true,
		},
		{
			name:     "Fim malformado",
			filters:  &domain.ProfitFilters{EndDate: "20/2025"},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dateRange, err := resolveDateRange(tt.filters, now, loc)

			if tt.hasError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedTimestamp))
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expectedStart.Equal(dateRange.Start), "início esperado %v, obtido %v", tt.expectedStart, dateRange.Start)
				assert.True(t, tt.expectedEnd.Equal(dateRange.End), "fim esperado %v, obtido %v", tt.expectedEnd, dateRange.End)
			}
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	loc := time.UTC
	dateRange := domain.DateRange{
		Start: time.Date(2025, 4, 1, 0, 0, 0, 0, loc),
		End:   time.Date(2025, 4, 30, 23, 59, 59, 0, loc),
	}

	// Os limites do período são inclusivos
	assert.True(t, dateRange.Contains(dateRange.Start))
	assert.True(t, dateRange.Contains(dateRange.End))
	assert.True(t, dateRange.Contains(time.Date(2025, 4, 15, 12, 0, 0, 0, loc)))
	assert.False(t, dateRange.Contains(time.Date(2025, 3, 31, 23, 59, 59, 0, loc)))
	assert.False(t, dateRange.Contains(time.Date(2025, 5, 1, 0, 0, 0, 0, loc)))
}
