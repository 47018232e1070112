package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSeverityString(t *testing.T) {
	for _, s := range []Severity{Info, Success, Warning, Error} {
		parsed, err := ParseSeverity(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	assert.Equal(t, "Severity(9)", Severity(9).String())
	_, err := ParseSeverity("loud")
	assert.Error(t, err)
}

func TestRecorderAndMulti(t *testing.T) {
	a := &Recorder{}
	b := &Recorder{}
	r := Multi(a, b, Discard)
	r.Report("one", Info)
	r.Report("two", Success)
	r.Report("three", Success)

	expected := []Entry{{"one", Info}, {"two", Success}, {"three", Success}}
	assert.Equal(t, expected, a.Entries())
	assert.Equal(t, expected, b.Entries())
	assert.Equal(t, []string{"two", "three"}, a.Messages(Success))
	assert.Empty(t, a.Messages(Error))
}

func TestMinSeverity(t *testing.T) {
	rec := &Recorder{}
	r := MinSeverity(rec, Warning)
	r.Report("quiet", Info)
	r.Report("fine", Success)
	r.Report("hmm", Warning)
	r.Report("bad", Error)
	assert.Equal(t, []Entry{{"hmm", Warning}, {"bad", Error}}, rec.Entries())
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)
	c.Report("Searching", Info)
	c.Report("Found pair", Success)
	c.WithPrefix("[walk]").Report("Skipping", Warning)
	assert.Equal(t, "Searching\nFound pair\n[walk] Skipping\n", buf.String())
}

func TestConsoleColors(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, true).Report("Found pair", Success)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Found pair")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestConsoleSwallowsWriteErrors(t *testing.T) {
	c := NewConsole(brokenWriter{}, true)
	assert.NotPanics(t, func() {
		c.Report("lost", Error)
	})
}

func TestZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	z := NewZap(zap.New(core))
	z.Report("searching", Info)
	z.Report("found", Success)
	z.Report("skipping", Warning)
	z.Report("aborted", Error)
	z.Sync()

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "success", entries[1].ContextMap()["outcome"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "Error", entries[3].ContextMap()["severity"])
}
