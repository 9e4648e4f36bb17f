package notify

import (
	"log/slog"

	"github.com/mkovalev/sessionguard/pkg/logger"
)

// LogSink routes notifications to a structured logger. It is the default
// sink for headless callers and for deployments that surface feedback
// through log-tailing rather than a UI.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a LogSink. A nil logger falls back to slog.Default().
func NewLogSink(log *slog.Logger) *LogSink {
	if log == nil {
		log = slog.Default()
	}
	return &LogSink{log: log}
}

func (s *LogSink) ReportError(msg string) {
	s.log.Error(msg, logger.Component("notify"))
}

func (s *LogSink) ReportSuccess(msg string) {
	s.log.Info(msg, logger.Component("notify"), logger.Event("success"))
}

func (s *LogSink) ReportInfo(msg string) {
	s.log.Info(msg, logger.Component("notify"))
}

func (s *LogSink) StartSpinner(msg string) Spinner {
	s.log.Debug(msg, logger.Component("notify"), logger.Event("spinner_start"))
	return &logSpinner{sink: s}
}

type logSpinner struct {
	sink *LogSink
}

func (sp *logSpinner) Complete(success bool, msg string) {
	if msg == "" {
		return
	}
	if success {
		sp.sink.ReportSuccess(msg)
		return
	}
	sp.sink.ReportError(msg)
}
