package utils

import (
	"fmt"
	"strings"
	"time"
)

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

// Formatos de data observados nas exportações de histórico de vendas
var flexibleDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	time.RFC3339,
}

// ParseFlexibleDate tenta interpretar a data em cada formato conhecido, na
// ordem. Usado na agregação, onde uma data inválida não é erro fatal.
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range flexibleDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("data em formato desconhecido: %q", dateStr)
}
