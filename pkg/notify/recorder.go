package notify

import "sync"

// Recorder is a Sink that captures every notification for test assertions.
type Recorder struct {
	mu        sync.Mutex
	Errors    []string
	Successes []string
	Infos     []string
	Spinners  []*RecordedSpinner
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) ReportError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, msg)
}

func (r *Recorder) ReportSuccess(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, msg)
}

func (r *Recorder) ReportInfo(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Infos = append(r.Infos, msg)
}

func (r *Recorder) StartSpinner(msg string) Spinner {
	r.mu.Lock()
	defer r.mu.Unlock()

	sp := &RecordedSpinner{Message: msg}
	r.Spinners = append(r.Spinners, sp)
	return sp
}

// ErrorCount returns how many errors were reported.
func (r *Recorder) ErrorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Errors)
}

// RecordedSpinner captures a spinner's lifecycle.
type RecordedSpinner struct {
	mu        sync.Mutex
	Message   string
	Completed bool
	Success   bool
	FinalMsg  string
}

func (sp *RecordedSpinner) Complete(success bool, msg string) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.Completed = true
	sp.Success = success
	sp.FinalMsg = msg
}

// Done reports whether Complete was called.
func (sp *RecordedSpinner) Done() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.Completed
}
