package agenda

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// ParityRule — блокировка чётных/нечётных чисел месяца.
type ParityRule string

const (
	ParityNone ParityRule = "nenhum"
	ParityEven ParityRule = "pares"
	ParityOdd  ParityRule = "impares"
)

// WeekRule — работа через неделю; дополнительные недели блокируются.
type WeekRule string

const (
	WeekNone     WeekRule = "nenhum"
	WeekWorkEven WeekRule = "trabalha_pares"
	WeekWorkOdd  WeekRule = "trabalha_impares"
)

func ParseParityRule(s string) (ParityRule, error) {
	switch r := ParityRule(s); r {
	case ParityNone, ParityEven, ParityOdd:
		return r, nil
	case "":
		return ParityNone, nil
	default:
		return "", fmt.Errorf("%w: regra_par_impar=%q", ErrInvalidRule, s)
	}
}

func ParseWeekRule(s string) (WeekRule, error) {
	switch r := WeekRule(s); r {
	case WeekNone, WeekWorkEven, WeekWorkOdd:
		return r, nil
	case "":
		return WeekNone, nil
	default:
		return "", fmt.Errorf("%w: regra_semanal=%q", ErrInvalidRule, s)
	}
}

// toggle повторяет поведение кнопки: повторный клик по активному значению сбрасывает
// в none, клик по другому значению переключает сразу.
func toggle[T ~string](current, clicked, none T) T {
	if current == clicked {
		return none
	}
	return clicked
}

func ToggleParity(current, clicked ParityRule) ParityRule {
	return toggle(current, clicked, ParityNone)
}

func ToggleWeek(current, clicked WeekRule) WeekRule {
	return toggle(current, clicked, WeekNone)
}

// ToggleWeekday добавляет день недели или убирает его, если он уже есть.
func ToggleWeekday(days []int, day int) []int {
	out := make([]int, 0, len(days)+1)
	found := false
	for _, d := range days {
		if d == day {
			found = true
			continue
		}
		out = append(out, d)
	}
	if !found {
		out = append(out, day)
	}
	sort.Ints(out)
	return out
}

// ParseWeekdays проверяет индексы 0=воскресенье..6=суббота и убирает дубли.
func ParseWeekdays(days []int) ([]time.Weekday, error) {
	seen := make(map[int]struct{}, len(days))
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("%w: dia da semana %d", ErrInvalidRule, d)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, time.Weekday(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Rules — массовые правила блокировки. Сами по себе строк не создают,
// влияют только на вычисляемый статус дня.
type Rules struct {
	BlockedWeekdays []time.Weekday
	Parity          ParityRule
	Week            WeekRule
	// WeekStart — точка отсчёта недель; nil — номер ISO-недели.
	WeekStart *time.Time
}

func (r Rules) Empty() bool {
	return len(r.BlockedWeekdays) == 0 &&
		(r.Parity == ParityNone || r.Parity == "") &&
		(r.Week == WeekNone || r.Week == "")
}

// Blocks проверяет один день.
func (r Rules) Blocks(day time.Time) bool {
	day = DateOf(day)
	for _, wd := range r.BlockedWeekdays {
		if day.Weekday() == wd {
			return true
		}
	}

	switch r.Parity {
	case ParityEven:
		if day.Day()%2 == 0 {
			return true
		}
	case ParityOdd:
		if day.Day()%2 == 1 {
			return true
		}
	}

	switch r.Week {
	case WeekWorkEven:
		return r.weekIndex(day)%2 != 0
	case WeekWorkOdd:
		return r.weekIndex(day)%2 == 0
	}
	return false
}

func (r Rules) weekIndex(day time.Time) int {
	if r.WeekStart == nil {
		_, w := day.ISOWeek()
		return w
	}
	days := int(day.Sub(DateOf(*r.WeekStart)).Hours() / 24)
	return floorMod(floorDiv(days, 7), 2)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return ((a % b) + b) % b
}

var rruleWeekdays = []rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// Expand разворачивает правила в список заблокированных дней окна через
// RRULE (по одному правилу на условие); результат совпадает с Blocks по
// каждому дню.
func (r Rules) Expand(window DateRange) ([]time.Time, error) {
	if r.Empty() {
		return nil, nil
	}

	var opts []rrule.ROption

	if len(r.BlockedWeekdays) > 0 {
		byday := make([]rrule.Weekday, 0, len(r.BlockedWeekdays))
		for _, wd := range r.BlockedWeekdays {
			byday = append(byday, rruleWeekdays[wd])
		}
		opts = append(opts, rrule.ROption{Freq: rrule.WEEKLY, Dtstart: window.Start, Byweekday: byday})
	}

	if r.Parity == ParityEven || r.Parity == ParityOdd {
		first := 2
		if r.Parity == ParityOdd {
			first = 1
		}
		var monthdays []int
		for d := first; d <= 31; d += 2 {
			monthdays = append(monthdays, d)
		}
		opts = append(opts, rrule.ROption{Freq: rrule.DAILY, Dtstart: window.Start, Bymonthday: monthdays})
	}

	if r.Week == WeekWorkEven || r.Week == WeekWorkOdd {
		opts = append(opts, r.weekRuleOptions(window)...)
	}

	seen := make(map[time.Time]struct{})
	var days []time.Time
	for _, opt := range opts {
		opt.Until = window.End
		rr, err := rrule.NewRRule(opt)
		if err != nil {
			return nil, fmt.Errorf("rrule: %w", err)
		}
		// правила пересекаются, одна дата может прийти из нескольких
		for _, d := range rr.Between(window.Start, window.End, true) {
			d = DateOf(d)
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days, nil
}

func (r Rules) weekRuleOptions(window DateRange) []rrule.ROption {
	// Без точки отсчёта берутся ISO-недели с нужной чётностью номера.
	if r.WeekStart == nil {
		first := 1
		if r.Week == WeekWorkOdd {
			first = 2
		}
		var weeks []int
		for w := first; w <= 53; w += 2 {
			weeks = append(weeks, w)
		}
		return []rrule.ROption{{
			Freq:      rrule.YEARLY,
			Dtstart:   window.Start,
			Wkst:      rrule.MO,
			Byweekno:  weeks,
			Byweekday: rruleWeekdays,
		}}
	}

	// С точкой отсчёта: семь дневных правил с шагом 14 дней, по одному на
	// каждый день заблокированной недели.
	base := DateOf(*r.WeekStart)
	if r.Week == WeekWorkEven {
		base = base.AddDate(0, 0, 7)
	}
	if base.After(window.Start) {
		back := int(base.Sub(window.Start).Hours()/24)/14 + 1
		base = base.AddDate(0, 0, -14*back)
	}
	opts := make([]rrule.ROption, 0, 7)
	for i := 0; i < 7; i++ {
		opts = append(opts, rrule.ROption{Freq: rrule.DAILY, Interval: 14, Dtstart: base.AddDate(0, 0, i)})
	}
	return opts
}
