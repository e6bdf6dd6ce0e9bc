package reporting

import (
	"time"

	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/shopspring/decimal"
)

// profitCalendar acumula lucros por dia preservando a ordem dos buckets:
// primeiro o esqueleto do mês inicial, depois dias extras na ordem em que
// aparecem nas vendas
type profitCalendar struct {
	keys    []string
	buckets map[string]*profitBucket
}

type profitBucket struct {
	gross decimal.Decimal
	net   decimal.Decimal
}

// newMonthCalendar cria um bucket zerado para cada dia do mês do instante
// inicial, garantindo que o relatório sempre contenha todos os dias do mês,
// mesmo os sem vendas
func newMonthCalendar(start time.Time) *profitCalendar {
	calendar := &profitCalendar{
		keys:    make([]string, 0, 31),
		buckets: make(map[string]*profitBucket),
	}

	days := daysInMonth(start.Year(), start.Month())
	for day := 1; day <= days; day++ {
		date := time.Date(start.Year(), start.Month(), day, 0, 0, 0, 0, start.Location())
		calendar.appendBucket(date.Format(time.DateOnly))
	}

	return calendar
}

func (c *profitCalendar) appendBucket(key string) *profitBucket {
	bucket := &profitBucket{}
	c.keys = append(c.keys, key)
	c.buckets[key] = bucket
	return bucket
}

// add acumula nos totais do dia, criando o bucket sob demanda quando a data
// cai fora do mês inicial
func (c *profitCalendar) add(key string, gross, net decimal.Decimal) {
	bucket, ok := c.buckets[key]
	if !ok {
		bucket = c.appendBucket(key)
	}

	bucket.gross = bucket.gross.Add(gross)
	bucket.net = bucket.net.Add(net)
}

// entries materializa o calendário, arredondando para duas casas decimais
// apenas na saída
func (c *profitCalendar) entries() []*domain.DailyProfit {
	result := make([]*domain.DailyProfit, 0, len(c.keys))
	for _, key := range c.keys {
		bucket := c.buckets[key]
		result = append(result, &domain.DailyProfit{
			Date:        key,
			GrossProfit: bucket.gross.StringFixed(2),
			NetProfit:   bucket.net.StringFixed(2),
		})
	}
	return result
}

// daysInMonth retorna a quantidade de dias do mês (o dia zero do mês seguinte)
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
