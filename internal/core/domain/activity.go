package domain

import (
	"errors"
	"strings"
	"time"
)

// LogTimestampLayout is the timestamp format used in activity log lines.
const LogTimestampLayout = "2006-01-02 15:04:05"

var errMalformedLogLine = errors.New("malformed log line")

// LogEntry is one immutable line of the facility activity log.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// String renders the entry as "[YYYY-MM-DD HH:MM:SS] message" on a single
// line.
func (e LogEntry) String() string {
	return "[" + e.Timestamp.Format(LogTimestampLayout) + "] " + FlattenMessage(e.Message)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// FlattenMessage replaces line breaks with spaces so a message always
// occupies exactly one log line.
func FlattenMessage(msg string) string {
	return lineBreaks.Replace(msg)
}

// ParseLogLine parses a rendered log line. The timestamp is interpreted in
// loc.
func ParseLogLine(line string, loc *time.Location) (LogEntry, error) {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, "[") {
		return LogEntry{}, errMalformedLogLine
	}
	end := strings.Index(line, "]")
	if end < 0 {
		return LogEntry{}, errMalformedLogLine
	}
	ts, err := time.ParseInLocation(LogTimestampLayout, line[1:end], loc)
	if err != nil {
		return LogEntry{}, err
	}
	return LogEntry{
		Timestamp: ts,
		Message:   strings.TrimPrefix(line[end+1:], " "),
	}, nil
}

// EventTypes are the kinds of free-form facility events an operator can
// record.
var EventTypes = []string{"Visitor", "Incident", "Other"}

// NoticeKind identifies an operator notice raised by a timer.
type NoticeKind string

const (
	NoticeCheckDue     NoticeKind = "check_due"
	NoticeShowerEnded  NoticeKind = "shower_ended"
	NoticeInvalidInput NoticeKind = "invalid_input"
)

// Notice is a message surfaced to the operator.
type Notice struct {
	Kind       NoticeKind `json:"kind"`
	ClientName string     `json:"client_name,omitempty"`
	Message    string     `json:"message"`
	At         time.Time  `json:"at"`
}
