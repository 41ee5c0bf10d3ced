package agenda

import (
	"strings"
)

const defaultEventType = "evento"

// ParseCSV разбирает файл вида "data,nome,tipo,cidade".
// Первая непустая строка — заголовок, она пропускается без проверки.
// Поля режутся по запятой без поддержки кавычек внутри значений.
func ParseCSV(text string) []ParsedEvent {
	lines := nonBlankLines(text)
	events := make([]ParsedEvent, 0, len(lines))

	for i := 1; i < len(lines); i++ {
		parts := strings.Split(strings.TrimSpace(lines[i]), ",")
		if len(parts) < 2 {
			continue
		}
		for j := range parts {
			parts[j] = stripQuotes(strings.TrimSpace(parts[j]))
		}

		date := normalizeCSVDate(parts[0])
		if date == "" || parts[1] == "" {
			continue
		}

		ev := ParsedEvent{Date: date, Name: parts[1], Type: defaultEventType}
		if len(parts) > 2 && parts[2] != "" {
			ev.Type = parts[2]
		}
		if len(parts) > 3 {
			ev.City = parts[3]
		}
		events = append(events, ev)
	}
	return events
}

func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// stripQuotes снимает по одной кавычке с каждого края.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// normalizeCSVDate: DD/MM/YYYY -> YYYY-MM-DD; строки с "-" считаются уже ISO
// и не трогаются. Неразобранная дата даёт пустую строку.
func normalizeCSVDate(s string) string {
	switch {
	case strings.Contains(s, "/"):
		p := strings.Split(s, "/")
		if len(p) != 3 {
			return ""
		}
		return padStart(p[2], 4, "20") + "-" + padStart(p[1], 2, "0") + "-" + padStart(p[0], 2, "0")
	case strings.Contains(s, "-"):
		return s
	default:
		return ""
	}
}

// padStart дополняет s слева повторами pad до длины n (как String.padStart):
// "25" с "20" даёт "2025".
func padStart(s string, n int, pad string) string {
	missing := n - len([]rune(s))
	if missing <= 0 || pad == "" {
		return s
	}
	fill := strings.Repeat(pad, missing/len(pad)+1)
	return string([]rune(fill)[:missing]) + s
}
