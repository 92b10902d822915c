package database

import (
	"strings"
	"sync"
)

type noticeLog struct {
	mu       sync.Mutex
	warnings []string
}

// record keeps WARNING notices; NOTICE and INFO (e.g. "table does not exist,
// skipping" from DROP TABLE IF EXISTS) are ignored.
func (l *noticeLog) record(severity, message string) {
	if !strings.EqualFold(severity, "WARNING") {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, message)
}

func (l *noticeLog) drain() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.warnings
	l.warnings = nil
	return out
}

// WarningError carries server warnings turned into an error.
type WarningError struct {
	Messages []string
}

func (e *WarningError) Error() string {
	return "warning: " + strings.Join(e.Messages, "; ")
}
