package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// TestLogger is a Logger implementation for tests. It writes JSON lines into
// an in-memory buffer and offers helpers for asserting on emitted records.
type TestLogger struct {
	mu     sync.Mutex
	buf    *bytes.Buffer
	level  Level
	fields []any
}

// NewTestLogger creates a TestLogger emitting records at or above level,
// together with the buffer it writes to.
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &TestLogger{buf: buf, level: level}, buf
}

func (t *TestLogger) Debug(msg string, fields ...any) {
	t.writeLog(LevelDebug, msg, fields...)
}

func (t *TestLogger) Info(msg string, fields ...any) {
	t.writeLog(LevelInfo, msg, fields...)
}

func (t *TestLogger) Warn(msg string, fields ...any) {
	t.writeLog(LevelWarn, msg, fields...)
}

func (t *TestLogger) Error(msg string, fields ...any) {
	t.writeLog(LevelError, msg, fields...)
}

func (t *TestLogger) With(fields ...any) Logger {
	t.mu.Lock()
	defer t.mu.Unlock()
	child := &TestLogger{buf: t.buf, level: t.level}
	child.fields = append(append([]any{}, t.fields...), fields...)
	return child
}

func (t *TestLogger) Enabled(_ context.Context, level Level) bool {
	return level >= t.level
}

func (t *TestLogger) writeLog(level Level, msg string, fields ...any) {
	if level < t.level {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	entry := map[string]interface{}{
		"level":   level.String(),
		"message": msg,
	}

	all := append(append([]any{}, t.fields...), fields...)
	for i := 0; i+1 < len(all); i += 2 {
		key, ok := all[i].(string)
		if !ok {
			continue
		}
		if err, isErr := all[i+1].(error); isErr {
			entry[key] = err.Error()
			continue
		}
		entry[key] = all[i+1]
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return
	}
	t.buf.Write(line)
	t.buf.WriteByte('\n')
}

// Entries parses and returns all emitted records.
func (t *TestLogger) Entries() ([]map[string]interface{}, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(t.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ContainsMessage reports whether any emitted record has the given message.
func (t *TestLogger) ContainsMessage(message string) bool {
	entries, err := t.Entries()
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry["message"] == message {
			return true
		}
	}
	return false
}

// ContainsField reports whether any emitted record carries the key/value pair.
func (t *TestLogger) ContainsField(key string, value interface{}) bool {
	entries, err := t.Entries()
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if got, ok := entry[key]; ok && got == value {
			return true
		}
	}
	return false
}

// Clear discards all captured records.
func (t *TestLogger) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf.Reset()
}
