package agenda

import "time"

// DayStatus — вычисленное состояние дня в календаре.
type DayStatus string

const (
	DayBlocked   DayStatus = "bloqueada"
	DayAvailable DayStatus = "disponivel"
	DayPartial   DayStatus = "parcial"
	DayBusy      DayStatus = "ocupada"
)

// BlockSource — почему день заблокирован.
type BlockSource string

const (
	BlockNone   BlockSource = ""
	BlockDate   BlockSource = "data"
	BlockPeriod BlockSource = "periodo"
	BlockRule   BlockSource = "regra"
)

type HolidayKind string

const (
	HolidayNational HolidayKind = "nacional"
	HolidayPersonal HolidayKind = "personalizado"
)

type Holiday struct {
	Date time.Time
	Name string
	Kind HolidayKind
}

// DayInput содержит всё, что нужно для классификации одного дня.
// ActiveEvents считается без отменённых событий.
type DayInput struct {
	Date         time.Time
	ActiveEvents int
	BlockedBy    BlockSource
	MaxPerDay    int
	Holiday      *Holiday
}

type DayResult struct {
	Date      time.Time
	Status    DayStatus
	Count     int
	BlockedBy BlockSource
	Holiday   *Holiday
}

// Classify: блокировка важнее всего (счётчик при этом 0), дальше
// сравнение активных событий с лимитом на день. Праздник только
// прикрепляется к результату и статус не меняет.
func Classify(in DayInput) DayResult {
	res := DayResult{Date: DateOf(in.Date), Holiday: in.Holiday}

	if in.BlockedBy != BlockNone {
		res.Status = DayBlocked
		res.BlockedBy = in.BlockedBy
		return res
	}

	limit := in.MaxPerDay
	if limit < 1 {
		limit = 1
	}

	switch {
	case in.ActiveEvents <= 0:
		res.Status = DayAvailable
	case in.ActiveEvents < limit:
		res.Status = DayPartial
		res.Count = in.ActiveEvents
	default:
		res.Status = DayBusy
		res.Count = in.ActiveEvents
	}
	return res
}

// BlockIndex собирает источники блокировки по датам, чтобы классифицировать
// месяц без повторных проходов по периодам.
type BlockIndex struct {
	dates     map[time.Time]struct{}
	periods   []DateRange
	ruleDates map[time.Time]struct{}
}

// NewBlockIndex: ruleDates — дни, попавшие под массовые правила (Rules.Expand);
// nil, если правила выключены.
func NewBlockIndex(dates []time.Time, periods []DateRange, ruleDates []time.Time) *BlockIndex {
	idx := &BlockIndex{
		dates:     make(map[time.Time]struct{}, len(dates)),
		periods:   periods,
		ruleDates: make(map[time.Time]struct{}, len(ruleDates)),
	}
	for _, d := range dates {
		idx.dates[DateOf(d)] = struct{}{}
	}
	for _, d := range ruleDates {
		idx.ruleDates[DateOf(d)] = struct{}{}
	}
	return idx
}

// Lookup: явная дата, затем период, затем правило.
func (idx *BlockIndex) Lookup(day time.Time) BlockSource {
	day = DateOf(day)
	if _, ok := idx.dates[day]; ok {
		return BlockDate
	}
	for _, p := range idx.periods {
		if p.Contains(day) {
			return BlockPeriod
		}
	}
	if _, ok := idx.ruleDates[day]; ok {
		return BlockRule
	}
	return BlockNone
}

// HolidayIndex хранит национальные и пользовательские праздники по датам.
// При совпадении дат побеждает первый добавленный (национальный).
type HolidayIndex map[time.Time]Holiday

func NewHolidayIndex(lists ...[]Holiday) HolidayIndex {
	idx := make(HolidayIndex)
	for _, list := range lists {
		for _, h := range list {
			d := DateOf(h.Date)
			if _, ok := idx[d]; ok {
				continue
			}
			h.Date = d
			idx[d] = h
		}
	}
	return idx
}

func (idx HolidayIndex) On(day time.Time) *Holiday {
	h, ok := idx[DateOf(day)]
	if !ok {
		return nil
	}
	return &h
}
