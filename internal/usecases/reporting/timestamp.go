package reporting

import (
	"strconv"
	"strings"
	"time"

	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/pkg/errors"
)

// ErrMalformedTimestamp indica um timestamp de venda que não segue o formato
// "MM/DD/YYYY, HH:MM:SS" gravado pelo registro de vendas
var ErrMalformedTimestamp = errors.New("timestamp de venda malformado")

// ParseSaleTimestamp interpreta um timestamp no formato "MM/DD/YYYY, HH:MM:SS"
// (mês/dia/ano, hora em 24h, componentes com ou sem zero à esquerda) como um
// instante no fuso informado
func ParseSaleTimestamp(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	datePart, timePart, found := strings.Cut(raw, ",")
	if !found {
		return time.Time{}, errors.Wrapf(ErrMalformedTimestamp, "separador ',' ausente em %q", raw)
	}

	dateFields := strings.Split(strings.TrimSpace(datePart), "/")
	if len(dateFields) != 3 {
		return time.Time{}, errors.Wrapf(ErrMalformedTimestamp, "data inválida em %q", raw)
	}

	timeFields := strings.Split(strings.TrimSpace(timePart), ":")
	if len(timeFields) != 3 {
		return time.Time{}, errors.Wrapf(ErrMalformedTimestamp, "hora inválida em %q", raw)
	}

	components := make([]int, 0, 6)
	for _, field := range append(dateFields, timeFields...) {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return time.Time{}, errors.Wrapf(ErrMalformedTimestamp, "componente não numérico %q em %q", field, raw)
		}
		components = append(components, n)
	}

	month, day, year := components[0], components[1], components[2]
	hour, minute, second := components[3], components[4], components[5]

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), nil
}

// resolveDateRange resolve os filtros opcionais "MM/DD/YYYY" em um período
// absoluto: na ausência de início, o primeiro dia do mês corrente às 00:00:00;
// na ausência de fim, o último dia do mês corrente às 23:59:59. Não há
// validação de início ≤ fim: um período invertido produz um relatório sem
// vendas, o que é aceito
func resolveDateRange(filters *domain.ProfitFilters, now time.Time, loc *time.Location) (domain.DateRange, error) {
	var dateRange domain.DateRange

	startDate := ""
	endDate := ""
	if filters != nil {
		startDate = filters.StartDate
		endDate = filters.EndDate
	}

	if startDate == "" {
		dateRange.Start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	} else {
		start, err := ParseSaleTimestamp(startDate+", 00:00:00", loc)
		if err != nil {
			return domain.DateRange{}, err
		}
		dateRange.Start = start
	}

	if endDate == "" {
		lastDay := daysInMonth(now.Year(), now.Month())
		dateRange.End = time.Date(now.Year(), now.Month(), lastDay, 23, 59, 59, 0, loc)
	} else {
		end, err := ParseSaleTimestamp(endDate+", 23:59:59", loc)
		if err != nil {
			return domain.DateRange{}, err
		}
		dateRange.End = end
	}

	return dateRange, nil
}
