package notify_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovalev/sessionguard/pkg/logger"
	"github.com/mkovalev/sessionguard/pkg/notify"
)

func TestLogSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := notify.NewLogSink(logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
	))

	sink.ReportError("session expired")
	assert.Contains(t, buf.String(), "session expired")
	assert.Contains(t, buf.String(), "level=ERROR")

	buf.Reset()
	sink.ReportSuccess("logged in")
	assert.Contains(t, buf.String(), "logged in")

	buf.Reset()
	sp := sink.StartSpinner("signing in")
	sp.Complete(false, "login failed")
	assert.Contains(t, buf.String(), "login failed")
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	rec := notify.NewRecorder()

	rec.ReportError("boom")
	rec.ReportInfo("hello")
	rec.ReportSuccess("done")

	assert.Equal(t, []string{"boom"}, rec.Errors)
	assert.Equal(t, []string{"hello"}, rec.Infos)
	assert.Equal(t, []string{"done"}, rec.Successes)
	assert.Equal(t, 1, rec.ErrorCount())

	sp := rec.StartSpinner("working")
	require.Len(t, rec.Spinners, 1)
	assert.False(t, rec.Spinners[0].Done())

	sp.Complete(true, "finished")
	assert.True(t, rec.Spinners[0].Done())
	assert.True(t, rec.Spinners[0].Success)
	assert.Equal(t, "finished", rec.Spinners[0].FinalMsg)
}

func TestNoopSink(t *testing.T) {
	t.Parallel()

	var sink notify.Sink = notify.NoopSink{}
	sink.ReportError("ignored")
	sink.StartSpinner("ignored").Complete(true, "ignored")
}
