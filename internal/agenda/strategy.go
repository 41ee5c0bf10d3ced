package agenda

import (
	"fmt"
	"strings"
)

// ParsedEvent — нормализованная строка файла импорта.
// Date уже в формате YYYY-MM-DD, но не проверена на корректность.
type ParsedEvent struct {
	Date string
	Name string
	Type string
	City string
}

// EventKey — ключ дубликата: та же дата и тот же клиент, без нормализации регистра.
type EventKey struct {
	Date string
	Name string
}

func (e ParsedEvent) Key() EventKey {
	return EventKey{Date: e.Date, Name: e.Name}
}

type Strategy string

const (
	StrategyReplaceAll Strategy = "substituir_tudo"
	StrategyAddNew     Strategy = "adicionar_novos"
	StrategyMerge      Strategy = "mesclar_atualizar"
)

func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.TrimSpace(s)); st {
	case StrategyReplaceAll, StrategyAddNew, StrategyMerge:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
}

// ImportCounts: итог импорта; ошибки строк не прерывают импорт.
type ImportCounts struct {
	Added   int
	Updated int
	Skipped int
	Removed int
	Errors  []string
}

// RowError форматирует ошибку строки так, как её видит пользователь.
func RowError(ev ParsedEvent, err error) string {
	return fmt.Sprintf("%s (%s): %v", ev.Name, ev.Date, err)
}

// Action говорит, что делать со строкой импорта при выбранной стратегии.
type Action int

const (
	ActionInsert Action = iota
	ActionUpdate
	ActionSkip
)

// Decide выбирает действие по стратегии и наличию ключа в агенде.
// Для substituir_tudo импортированные события уже удалены, а ручные
// совпадения не мешают вставке.
func Decide(strategy Strategy, exists bool) Action {
	switch strategy {
	case StrategyReplaceAll:
		return ActionInsert
	case StrategyMerge:
		if exists {
			return ActionUpdate
		}
		return ActionInsert
	default:
		if exists {
			return ActionSkip
		}
		return ActionInsert
	}
}
