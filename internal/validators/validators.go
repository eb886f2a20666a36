package validators

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PeriodLayout - формат параметра periodo в API (гранулярность - день)
const PeriodLayout = "2006-01-02"

var ErrInvalidPeriod = errors.New("invalid period")

// ParsePeriod проверяет строку периода вида YYYY-MM-DD
func ParsePeriod(period string) (time.Time, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidPeriod)
	}
	t, err := time.Parse(PeriodLayout, period)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	return t, nil
}

// ResolvePeriod - период запуска: явно заданный или текущий день в указанной зоне
func ResolvePeriod(override string, now time.Time, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(override) != "" {
		return ParsePeriod(override)
	}
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// FormatPeriod - представление периода для query параметра
func FormatPeriod(t time.Time) string {
	return t.Format(PeriodLayout)
}
