package manager

import (
	"log"
	"os"
)

// EventLog appends discrete gameplay event records to a log file. A
// file that cannot be opened disables logging without affecting the
// game.
type EventLog struct {
	logger *log.Logger
	file   *os.File
}

func NewEventLog(path string) *EventLog {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return &EventLog{}
	}
	return &EventLog{
		logger: log.New(f, "", log.LstdFlags),
		file:   f,
	}
}

// Log records one event with its tick count.
func (el *EventLog) Log(tick int, kind string) {
	if el.logger == nil {
		return
	}
	el.logger.Printf("tick=%d event=%s", tick, kind)
}

// Logf records a formatted event record.
func (el *EventLog) Logf(format string, args ...any) {
	if el.logger == nil {
		return
	}
	el.logger.Printf(format, args...)
}

// Close flushes and closes the underlying file.
func (el *EventLog) Close() {
	if el.file != nil {
		el.file.Close()
	}
}
