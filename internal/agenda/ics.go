package agenda

import (
	"regexp"
	"strings"
)

var icsDatePattern = regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`)

// ParseICS разбирает VEVENT-блоки построчно. Время и часовой пояс из
// DTSTART отбрасываются, перенос строк и экранирование ICS не обрабатываются.
// Блок без даты или без SUMMARY молча пропускается.
func ParseICS(text string) []ParsedEvent {
	var (
		events  []ParsedEvent
		current ParsedEvent
		inEvent bool
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case line == "BEGIN:VEVENT":
			inEvent = true
			current = ParsedEvent{Type: defaultEventType}
		case line == "END:VEVENT":
			if current.Date != "" && current.Name != "" {
				events = append(events, current)
			}
			inEvent = false
			current = ParsedEvent{}
		case !inEvent:
			continue
		case strings.HasPrefix(line, "DTSTART"):
			if m := icsDatePattern.FindStringSubmatch(line); m != nil {
				current.Date = m[1] + "-" + m[2] + "-" + m[3]
			}
		case strings.HasPrefix(line, "SUMMARY:"):
			current.Name = strings.TrimSpace(strings.TrimPrefix(line, "SUMMARY:"))
		case strings.HasPrefix(line, "DESCRIPTION:"):
			current.Type = orDefault(strings.TrimSpace(strings.TrimPrefix(line, "DESCRIPTION:")), defaultEventType)
		case strings.HasPrefix(line, "LOCATION:"):
			// LOCATION используется только как запасной вариант, если DESCRIPTION тип не задал.
			if current.Type == "" || current.Type == defaultEventType {
				current.Type = orDefault(strings.TrimSpace(strings.TrimPrefix(line, "LOCATION:")), defaultEventType)
			}
		}
	}
	return events
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
