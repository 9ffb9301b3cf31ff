// Package worklog maintains an append-only text log of work entries, one
// timestamped line per entry. Lines are only ever added, never rewritten.
package worklog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// TimestampLayout is the wire format of log timestamps, second precision.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is one logged unit of work.
type Entry struct {
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
}

// Log is bound to a single on-disk log file. The file is created on first append.
type Log struct {
	path string
}

func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file location.
func (l *Log) Path() string { return l.path }

// Append writes one "[timestamp] description" line and returns the entry as
// written. The timestamp is generated at call time.
func (l *Log) Append(description string) (Entry, error) {
	e := Entry{
		Timestamp:   time.Now().Format(TimestampLayout),
		Description: description,
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Entry{}, fmt.Errorf("open work log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "[%s] %s\n", e.Timestamp, e.Description); err != nil {
		return Entry{}, fmt.Errorf("append work log: %w", err)
	}
	return e, nil
}

// Entries returns all logged entries, oldest first. A missing log file reads
// as an empty log, not an error.
func (l *Log) Entries() ([]Entry, error) {
	b, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read work log: %w", err)
	}

	entries := []Entry{}
	for _, line := range strings.Split(string(b), "\n") {
		if line == "" {
			continue
		}
		entries = append(entries, parseLine(line))
	}
	return entries, nil
}

// parseLine splits a "[timestamp] description" line. A line that doesn't
// match the bracket format keeps its raw text as the description.
func parseLine(line string) Entry {
	if strings.HasPrefix(line, "[") {
		if i := strings.Index(line, "] "); i > 0 {
			return Entry{Timestamp: line[1:i], Description: line[i+2:]}
		}
	}
	return Entry{Description: line}
}
