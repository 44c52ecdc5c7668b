// Package ics turns iCalendar event occurrences into commitment records.
//
// The importer handles timed, single-day occurrences only: recurring source
// events must already be expanded into individual occurrences before they
// reach the scheduler, so events still carrying an RRULE are skipped and
// reported, as are all-day and multi-day events.
package ics

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"ritmo/internal/dateutil"
	"ritmo/internal/task"
)

// Event is a single VEVENT as read from the file.
type Event struct {
	UID     string
	Summary string
	Start   time.Time
	End     time.Time
	AllDay  bool

	// Recurring is true when the event carries an RRULE; such events have
	// not been expanded into occurrences and cannot be imported.
	Recurring bool
}

// Result reports what an import produced and what it had to skip.
type Result struct {
	Commitments      []*task.Commitment
	SkippedAllDay    int
	SkippedMultiDay  int
	SkippedRecurring int
	SkippedInvalid   int
}

// Skipped returns the total number of events that were not imported.
func (r Result) Skipped() int {
	return r.SkippedAllDay + r.SkippedMultiDay + r.SkippedRecurring + r.SkippedInvalid
}

// Parse reads an iCalendar stream and returns its events.
func Parse(r io.Reader) ([]Event, error) {
	lines, err := unfold(r)
	if err != nil {
		return nil, err
	}

	var (
		events  []Event
		current *Event
	)
	for _, line := range lines {
		name, params, value := splitProperty(line)

		switch name {
		case "BEGIN":
			if value == "VEVENT" {
				current = &Event{}
			}
		case "END":
			if value == "VEVENT" && current != nil {
				events = append(events, *current)
				current = nil
			}
		}
		if current == nil {
			continue
		}

		switch name {
		case "UID":
			current.UID = value
		case "SUMMARY":
			current.Summary = unescape(value)
		case "RRULE":
			current.Recurring = true
		case "DTSTART":
			t, allDay, err := parseDateTime(value, params)
			if err != nil {
				return nil, fmt.Errorf("parsing DTSTART %q: %w", value, err)
			}
			current.Start = t
			current.AllDay = current.AllDay || allDay
		case "DTEND":
			t, allDay, err := parseDateTime(value, params)
			if err != nil {
				return nil, fmt.Errorf("parsing DTEND %q: %w", value, err)
			}
			current.End = t
			current.AllDay = current.AllDay || allDay
		}
	}
	return events, nil
}

// Import parses the stream and converts every importable event into a
// one-off commitment on its own date.
func Import(r io.Reader) (Result, error) {
	events, err := Parse(r)
	if err != nil {
		return Result{}, err
	}
	return ToCommitments(events), nil
}

// ToCommitments maps events to one-off commitments, counting the skips.
func ToCommitments(events []Event) Result {
	var result Result
	for _, e := range events {
		switch {
		case e.Recurring:
			result.SkippedRecurring++
			continue
		case e.AllDay:
			result.SkippedAllDay++
			continue
		case e.Start.IsZero() || e.End.IsZero():
			result.SkippedInvalid++
			continue
		case !dateutil.SameDay(e.Start, e.End):
			result.SkippedMultiDay++
			continue
		}

		name := e.Summary
		if name == "" {
			name = "Imported event"
		}

		c, err := task.NewCommitment(
			name,
			e.Start.Format("15:04"),
			e.End.Format("15:04"),
			task.RecurrenceNone,
			nil,
			dateutil.DayKey(e.Start),
		)
		if err != nil {
			result.SkippedInvalid++
			continue
		}
		result.Commitments = append(result.Commitments, c)
	}
	return result
}

// unfold reads lines and joins RFC 5545 continuation lines (a line starting
// with a space or tab continues the previous one).
func unfold(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading calendar: %w", err)
	}
	return lines, nil
}

// splitProperty breaks "NAME;PARAM=X;PARAM=Y:value" into its parts.
func splitProperty(line string) (name string, params map[string]string, value string) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return strings.ToUpper(line), nil, ""
	}
	value = line[idx+1:]

	head := line[:idx]
	parts := strings.Split(head, ";")
	name = strings.ToUpper(parts[0])

	for _, p := range parts[1:] {
		if k, v, ok := strings.Cut(p, "="); ok {
			if params == nil {
				params = make(map[string]string)
			}
			params[strings.ToUpper(k)] = v
		}
	}
	return name, params, value
}

// parseDateTime parses an iCalendar date or date-time value. UTC values are
// converted to local time; TZID zones are honored when the zone database
// knows them, otherwise the wall time is taken as local.
func parseDateTime(value string, params map[string]string) (t time.Time, allDay bool, err error) {
	if params["VALUE"] == "DATE" || len(value) == 8 {
		t, err = time.ParseInLocation("20060102", value, time.Local)
		return t, true, err
	}

	if strings.HasSuffix(value, "Z") {
		t, err = time.Parse("20060102T150405Z", value)
		if err != nil {
			return time.Time{}, false, err
		}
		return t.Local(), false, nil
	}

	loc := time.Local
	if tzid := params["TZID"]; tzid != "" {
		if zone, zerr := time.LoadLocation(tzid); zerr == nil {
			loc = zone
		}
	}
	t, err = time.ParseInLocation("20060102T150405", value, loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.In(time.Local), false, nil
}

// unescape reverses iCalendar text escaping.
func unescape(s string) string {
	replacer := strings.NewReplacer(
		`\\`, `\`,
		`\;`, ";",
		`\,`, ",",
		`\n`, "\n",
		`\N`, "\n",
	)
	return replacer.Replace(s)
}
