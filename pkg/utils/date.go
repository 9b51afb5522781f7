package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DayStartUTC retorna a meia-noite UTC do dia de t
func DayStartUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBoundsUTC retorna o intervalo [00:00:00, 23:59:59] UTC do dia de t
func DayBoundsUTC(t time.Time) (time.Time, time.Time) {
	start := DayStartUTC(t)
	end := start.Add(24*time.Hour - time.Second)
	return start, end
}

// ElapsedHoursUTC retorna as horas fracionárias decorridas desde a meia-noite
// UTC do dia de t
func ElapsedHoursUTC(t time.Time) float64 {
	return t.UTC().Sub(DayStartUTC(t)).Hours()
}
