package domain

import "time"

const day = 24 * time.Hour

// TimeWindow é um intervalo semiaberto [Start, End). End zero significa sem limite superior.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

func (w TimeWindow) IsOpenEnded() bool {
	return w.End.IsZero()
}

func (w TimeWindow) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	return w.IsOpenEnded() || t.Before(w.End)
}

// ComparisonWindow contém o período atual (hoje) e o período anterior (ontem), ambos em UTC
type ComparisonWindow struct {
	Current TimeWindow
	Prior   TimeWindow
}

// StartOfDayUTC trunca o instante para a meia-noite UTC do mesmo dia
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NewComparisonWindow calcula current = [hoje, ∞) e prior = [ontem, hoje) a partir de now,
// independente do fuso horário de quem chama.
func NewComparisonWindow(now time.Time) ComparisonWindow {
	todayStart := StartOfDayUTC(now)
	yesterdayStart := todayStart.Add(-day)

	return ComparisonWindow{
		Current: TimeWindow{Start: todayStart},
		Prior:   TimeWindow{Start: yesterdayStart, End: todayStart},
	}
}

// DateRange retorna as datas (sem horário) de now-days até now, usadas pela coleção de analytics
func DateRange(now time.Time, days int) (string, string) {
	end := StartOfDayUTC(now)
	start := end.Add(-time.Duration(days) * day)
	return start.Format(time.DateOnly), end.Format(time.DateOnly)
}
