package agenda

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout задаёт формат календарной даты в API и в файлах импорта.
const DateLayout = "2006-01-02"

// DateOf отбрасывает время: полночь того же календарного дня в UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateRange — интервал дат [Start, End], обе границы включительно.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange нормализует границы до дат и проверяет порядок.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidRange
	}
	start, end = DateOf(start), DateOf(end)
	if end.Before(start) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

// MonthRange возвращает все дни месяца.
func MonthRange(year int, month time.Month) (DateRange, error) {
	if year < 1 || month < time.January || month > time.December {
		return DateRange{}, ErrInvalidRange
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}, nil
}

func (r DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days перечисляет даты интервала по порядку.
func (r DateRange) Days() []time.Time {
	if r.End.Before(r.Start) {
		return nil
	}
	days := make([]time.Time, 0, int(r.End.Sub(r.Start).Hours()/24)+1)
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Clip возвращает пересечение с other; ok=false, если пересечения нет.
func (r DateRange) Clip(other DateRange) (DateRange, bool) {
	start, end := r.Start, r.End
	if other.Start.After(start) {
		start = other.Start
	}
	if other.End.Before(end) {
		end = other.End
	}
	if end.Before(start) {
		return DateRange{}, false
	}
	return DateRange{Start: start, End: end}, true
}

var ptWeekdays = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// FormatDateForUser — "sábado, 06/12/2025".
func FormatDateForUser(t time.Time) string {
	return fmt.Sprintf("%s, %s", ptWeekdays[t.Weekday()], t.Format("02/01/2006"))
}
