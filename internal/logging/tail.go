package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Entry is one decoded line of the JSON log file.
type Entry struct {
	Time    time.Time
	Level   string
	Logger  string
	Message string
	Fields  map[string]any
	// Raw holds lines that were not JSON.
	Raw string
}

// FieldString renders the entry's extra fields as sorted key=value pairs.
func (e Entry) FieldString() string {
	if len(e.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, e.Fields[k])
	}
	return strings.Join(parts, " ")
}

// Tail returns at most maxLines entries from the end of the log at path,
// oldest first. A missing file yields no entries.
func Tail(path string, maxLines int) ([]Entry, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count, idx := 0, 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	entries := make([]Entry, 0, count)
	start := 0
	if count == maxLines {
		start = idx
	}
	for i := 0; i < count; i++ {
		entries = append(entries, parseEntry(ring[(start+i)%maxLines]))
	}
	return entries, nil
}

func parseEntry(line string) Entry {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{Raw: line}
	}

	e := Entry{Fields: map[string]any{}}
	for k, v := range raw {
		switch k {
		case "ts":
			if s, ok := v.(string); ok {
				e.Time = parseTime(s)
			}
		case "level":
			e.Level, _ = v.(string)
		case "logger":
			e.Logger, _ = v.(string)
		case "msg":
			e.Message, _ = v.(string)
		case "caller", "stacktrace":
		default:
			e.Fields[k] = v
		}
	}
	return e
}

// timeLayouts covers zap's ISO8601 encoder and RFC 3339.
var timeLayouts = []string{"2006-01-02T15:04:05.000Z0700", time.RFC3339Nano}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
