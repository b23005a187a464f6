package dashboard

// Notifier receives the per-operation success and error signals the UI layer
// surfaces as toasts. Signals are informational only; controllers return the
// underlying error as well.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}
