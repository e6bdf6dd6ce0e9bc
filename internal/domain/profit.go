package domain

import "time"

// ProfitFilters carrega os parâmetros opcionais de período do relatório de
// lucros, no formato "MM/DD/YYYY" (vazio = mês corrente)
type ProfitFilters struct {
	StartDate string
	EndDate   string
}

// DateRange é o período absoluto resolvido a partir dos filtros: início do dia
// para Start e fim do dia (23:59:59) para End
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains verifica se o instante está dentro do período, inclusivo nas bordas
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// DailyProfit é uma entrada do calendário de lucros diários. Os valores são
// renderizados com duas casas decimais apenas na saída
type DailyProfit struct {
	Date        string `json:"date"`
	GrossProfit string `json:"gross_profit"`
	NetProfit   string `json:"net_profit"`
}
