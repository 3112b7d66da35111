package monitoring

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Component string                 `json:"component"`
	EventType string                 `json:"event_type"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// JSONLogger writes one JSON object per entry. Entries below the minimum
// level are discarded.
type JSONLogger struct {
	component string
	min       LogLevel
	now       func() time.Time

	mu  sync.Mutex
	enc *json.Encoder
}

// NewLogger returns a logger for component writing to w. A nil w writes to
// stdout.
func NewLogger(component string, w io.Writer, min LogLevel) *JSONLogger {
	if w == nil {
		w = os.Stdout
	}
	return &JSONLogger{
		component: component,
		min:       min,
		now:       time.Now,
		enc:       json.NewEncoder(w),
	}
}

func (l *JSONLogger) Log(ctx context.Context, level LogLevel, eventType string, message string, details map[string]interface{}) {
	if level < l.min {
		return
	}
	entry := LogEntry{
		Timestamp: l.now(),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		EventType: eventType,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

type Logger interface {
	Log(ctx context.Context, level LogLevel, eventType string, message string, details map[string]interface{})
}

type nopLogger struct{}

func (nopLogger) Log(context.Context, LogLevel, string, string, map[string]interface{}) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }
