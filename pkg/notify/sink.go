package notify

// Sink receives user-facing feedback from the session lifecycle components.
// Presentation (toasts, modals, spinners) is entirely the implementer's
// concern; callers never inspect results beyond the spinner handle.
type Sink interface {
	ReportError(msg string)
	ReportSuccess(msg string)
	ReportInfo(msg string)

	// StartSpinner begins a loading indicator and returns its handle.
	StartSpinner(msg string) Spinner
}

// Spinner is the handle for an in-progress loading indicator.
type Spinner interface {
	// Complete finishes the spinner, optionally replacing its message.
	Complete(success bool, msg string)
}

// NoopSink discards all notifications. Useful as a default so components
// never need nil checks on their sink.
type NoopSink struct{}

func (NoopSink) ReportError(string)   {}
func (NoopSink) ReportSuccess(string) {}
func (NoopSink) ReportInfo(string)    {}

func (NoopSink) StartSpinner(string) Spinner { return noopSpinner{} }

type noopSpinner struct{}

func (noopSpinner) Complete(bool, string) {}
