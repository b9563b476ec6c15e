package utils

import "time"

// ParseDate interpreta uma data no formato 2006-01-02 em UTC. String vazia resulta na data zero.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation(time.DateOnly, dateStr, time.UTC)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
