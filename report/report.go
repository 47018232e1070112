// Package report carries the human readable narration of a walk. Reporting is
// observational only: a reporter can never fail the walk it is describing, so
// Report has no error to return, and implementations that write somewhere
// swallow their own write errors.
package report

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

var severityLabels = [...]string{"Info", "Success", "Warning", "Error"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityLabels) {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityLabels[s]
}

// ParseSeverity is the inverse of Severity.String, case sensitive.
func ParseSeverity(label string) (Severity, error) {
	for i, l := range severityLabels {
		if l == label {
			return Severity(i), nil
		}
	}
	return Info, errors.Errorf("unknown severity %q", label)
}

type Reporter interface {
	Report(message string, severity Severity)
}

// Func adapts a plain function to a Reporter.
type Func func(message string, severity Severity)

func (f Func) Report(message string, severity Severity) {
	f(message, severity)
}

// Discard drops everything.
var Discard Reporter = Func(func(string, Severity) {})

type multi []Reporter

// Multi sends every report to all of the reporters, in order.
func Multi(reporters ...Reporter) Reporter {
	return multi(reporters)
}

func (m multi) Report(message string, severity Severity) {
	for _, r := range m {
		r.Report(message, severity)
	}
}

// MinSeverity drops anything less severe than min before passing it on.
func MinSeverity(r Reporter, min Severity) Reporter {
	return Func(func(message string, severity Severity) {
		if severity >= min {
			r.Report(message, severity)
		}
	})
}

type Entry struct {
	Message  string
	Severity Severity
}

// Recorder keeps every report in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Report(message string, severity Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{message, severity})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Messages returns the recorded messages with the given severity.
func (r *Recorder) Messages(severity Severity) []string {
	var messages []string
	for _, e := range r.Entries() {
		if e.Severity == severity {
			messages = append(messages, e.Message)
		}
	}
	return messages
}
