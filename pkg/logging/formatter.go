package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// TextFormatter renders entries as human-readable text.
type TextFormatter struct {
	// TimestampFormat overrides the timestamp layout.
	TimestampFormat string
	// DisableTimestamp drops the timestamp column.
	DisableTimestamp bool
	// DisableSorting keeps fields in map order.
	DisableSorting bool
}

// NewTextFormatter creates a text formatter with default layout.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
	}
}

// Format formats a log entry as text.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var buf bytes.Buffer

	if !f.DisableTimestamp {
		buf.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		buf.WriteByte(' ')
	}

	fmt.Fprintf(&buf, "[%s] ", entry.Level.String())

	if entry.RequestID != "" {
		fmt.Fprintf(&buf, "[%s] ", entry.RequestID)
	}
	if entry.Component != "" {
		buf.WriteString(entry.Component)
		buf.WriteString(": ")
	}

	buf.WriteString(entry.Message)

	if pairs := f.formatFields(entry); pairs != "" {
		buf.WriteString(" | ")
		buf.WriteString(pairs)
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (f *TextFormatter) formatFields(entry *Entry) string {
	skip := map[string]bool{"request_id": true}
	if entry.Component != "" {
		skip["component"] = true
	}

	var pairs []string
	for k, v := range entry.Fields {
		if skip[k] {
			continue
		}

		var value string
		switch val := v.(type) {
		case error:
			value = val.Error()
		case string:
			if strings.Contains(val, " ") {
				value = fmt.Sprintf("%q", val)
			} else {
				value = val
			}
		default:
			value = fmt.Sprintf("%v", v)
		}
		pairs = append(pairs, k+"="+value)
	}

	if !f.DisableSorting {
		sort.Strings(pairs)
	}
	return strings.Join(pairs, " ")
}

// JSONFormatter renders entries as one JSON object per line.
type JSONFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewJSONFormatter creates a JSON formatter with RFC3339-style timestamps.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	}
}

// Format formats a log entry as JSON.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+3)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if !f.DisableTimestamp {
		data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	}

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			data[k] = err.Error()
		} else {
			data[k] = v
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log entry: %w", err)
	}
	return append(out, '\n'), nil
}
