package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/core/ports"
)

// ActivityLog writes one text file per calendar day under
// <dir>/<YYYY>/<MM>/<YYYY-MM-DD>.txt. Files are only ever appended to.
type ActivityLog struct {
	dir string
	mu  sync.Mutex
	log zerolog.Logger
}

var _ ports.ActivityLog = (*ActivityLog)(nil)

func NewActivityLog(dir string, log zerolog.Logger) *ActivityLog {
	return &ActivityLog{
		dir: dir,
		log: log.With().Str("component", "activity_log").Str("dir", dir).Logger(),
	}
}

// PathFor returns the file that holds entries stamped on t's calendar day.
func (a *ActivityLog) PathFor(t time.Time) string {
	return filepath.Join(a.dir, t.Format("2006"), t.Format("01"), t.Format("2006-01-02")+".txt")
}

// Append writes entry as one line to its day's file.
func (a *ActivityLog) Append(_ context.Context, entry domain.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	path := a.PathFor(entry.Timestamp)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("activity log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open activity log: %w", err)
	}
	if _, err := f.WriteString(entry.String() + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append activity log: %w", err)
	}
	return f.Close()
}

// Recent reads the files covering [now-window, now] and returns the lines
// stamped at or after now-window, in file order. Missing files, unparsable
// lines and lines longer than maxLineBytes are skipped. A day that cannot
// be read does not stop the others; its error is returned alongside the
// entries that were read.
func (a *ActivityLog) Recent(_ context.Context, now time.Time, window time.Duration) ([]domain.LogEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cutoff := now.Add(-window)
	var (
		out  []domain.LogEntry
		errs []error
	)
	for _, day := range daysBetween(cutoff, now) {
		entries, err := a.readDay(day, now.Location())
		if err != nil {
			a.log.Warn().Err(err).Time("day", day).Msg("activity log day partially read")
			errs = append(errs, err)
		}
		for _, e := range entries {
			if !e.Timestamp.Before(cutoff) {
				out = append(out, e)
			}
		}
	}
	return out, errors.Join(errs...)
}

// maxLineBytes bounds a single activity line held in memory while reading.
const maxLineBytes = 1 << 20

func (a *ActivityLog) readDay(day time.Time, loc *time.Location) ([]domain.LogEntry, error) {
	f, err := os.Open(a.PathFor(day))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open activity log: %w", err)
	}
	defer f.Close()

	var (
		entries []domain.LogEntry
		line    []byte
		skipped int
		tooLong bool
	)
	r := bufio.NewReader(f)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return entries, fmt.Errorf("read activity log: %w", err)
		}
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineBytes {
				tooLong, line = true, line[:0]
			}
		}
		if isPrefix {
			continue
		}

		if tooLong {
			skipped++
		} else if e, err := domain.ParseLogLine(string(line), loc); err == nil {
			entries = append(entries, e)
		} else {
			skipped++
		}
		line, tooLong = line[:0], false
	}
	if skipped > 0 {
		a.log.Debug().Int("skipped", skipped).Time("day", day).Msg("unreadable activity lines skipped")
	}
	return entries, nil
}

// daysBetween returns midnight of every calendar day from from's day to
// to's day inclusive.
func daysBetween(from, to time.Time) []time.Time {
	loc := to.Location()
	from = from.In(loc)
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
