package agenda

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

type FileFormat string

const (
	FormatCSV FileFormat = "csv"
	FormatICS FileFormat = "ics"
)

// Origin возвращает значение поля origem для событий, созданных из файла этого формата.
func (f FileFormat) Origin() string {
	if f == FormatICS {
		return "ics_import"
	}
	return "csv_import"
}

// DetectFormat определяет формат по расширению имени файла.
func DetectFormat(filename string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".ics", ".ical":
		return FormatICS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText приводит содержимое файла к строке UTF-8. Таблицы, сохранённые
// из Excel, часто приходят в Windows-1252.
func DecodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252: %w", err)
	}
	return string(out), nil
}

// ParseFile проверяет расширение, декодирует и разбирает файл.
func ParseFile(filename string, data []byte) (FileFormat, []ParsedEvent, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return "", nil, err
	}

	text, err := DecodeText(data)
	if err != nil {
		return "", nil, err
	}

	var events []ParsedEvent
	switch format {
	case FormatICS:
		events = ParseICS(text)
	default:
		events = ParseCSV(text)
	}

	if len(events) == 0 {
		return format, nil, ErrNoEvents
	}
	return format, events, nil
}
