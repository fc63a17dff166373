package feedback

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []Event
	err    error
}

func (r *recorder) Notify(e Event) error {
	r.events = append(r.events, e)
	return r.err
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestBellRingsOnlyForOutcomes(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	for _, e := range []Event{Light, Medium, Success, Error} {
		require.NoError(t, b.Notify(e))
	}

	assert.Equal(t, "\a\a", buf.String())
}

func TestMultiDeliversToAll(t *testing.T) {
	first := &recorder{err: errors.New("boom")}
	second := &recorder{}

	err := Multi{first, nil, second}.Notify(Medium)

	require.Error(t, err)
	assert.Equal(t, []Event{Medium}, first.events)
	assert.Equal(t, []Event{Medium}, second.events, "a failing notifier must not block the rest")
}

func TestSendSwallowsErrors(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	assert.NotPanics(t, func() {
		Send(NewBell(failingWriter{}), Error, logger)
		Send(nil, Error, logger)
		Send(Nop{}, Success, nil)
	})
	assert.Contains(t, logs.String(), "feedback dropped")
}

func TestLogNotifier(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	require.NoError(t, LogNotifier{Logger: logger}.Notify(Success))
	require.NoError(t, LogNotifier{}.Notify(Success))
	assert.Contains(t, logs.String(), "success")
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "medium", Medium.String())
	assert.Equal(t, "unknown", Event(42).String())
}
