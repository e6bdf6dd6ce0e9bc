package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected int
	}{
		{"Janeiro tem 31 dias", 2025, time.January, 31},
		{"Abril tem 30 dias", 2025, time.April, 30},
		{"Fevereiro comum tem 28 dias", 2025, time.February, 28},
		{"Fevereiro bissexto tem 29 dias", 2024, time.February, 29},
		{"Dezembro tem 31 dias", 2024, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, daysInMonth(tt.year, tt.month))
		})
	}
}

func TestNewMonthCalendar(t *testing.T) {
	start := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	calendar := newMonthCalendar(start)

	entries := calendar.entries()
	assert.Len(t, entries, 30)

	// O esqueleto cobre o mês inteiro do instante inicial, zerado
	assert.Equal(t, "2025-04-01", entries[0].Date)
	assert.Equal(t, "2025-04-30", entries[29].Date)
	for _, entry := range entries {
		assert.Equal(t, "0.00", entry.GrossProfit)
		assert.Equal(t, "0.00", entry.NetProfit)
	}
}

func TestProfitCalendarAdd(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	calendar := newMonthCalendar(start)

	calendar.add("2025-04-05", decimal.NewFromFloat(10.505), decimal.NewFromFloat(3.125))
	calendar.add("2025-04-05", decimal.NewFromFloat(2.0), decimal.NewFromFloat(1.0))

	// Dia fora do mês inicial ganha um bucket extra ao final, na ordem de chegada
	calendar.add("2025-05-02", decimal.NewFromInt(7), decimal.NewFromInt(2))
	calendar.add("2025-05-01", decimal.NewFromInt(1), decimal.NewFromInt(1))

	entries := calendar.entries()
	assert.Len(t, entries, 32)

	// Acumulação sem arredondamento intermediário; duas casas só na saída
	assert.Equal(t, "2025-04-05", entries[4].Date)
	assert.Equal(t, "12.51", entries[4].GrossProfit)
	assert.Equal(t, "4.13", entries[4].NetProfit)

	assert.Equal(t, "2025-05-02", entries[30].Date)
	assert.Equal(t, "7.00", entries[30].GrossProfit)
	assert.Equal(t, "2025-05-01", entries[31].Date)
}
