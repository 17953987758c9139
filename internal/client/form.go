package client

import (
	"context"
	"errors"
	"sync"
	"time"
)

// FormState is the lifecycle of a submission form.
type FormState string

const (
	FormIdle       FormState = "idle"
	FormSubmitting FormState = "submitting"
	FormSucceeded  FormState = "succeeded"
	FormClosed     FormState = "closed"
)

// FormOptions configures a FormController.
type FormOptions struct {
	// Validate runs before any network call. A non-nil error aborts the
	// submission with a toast and leaves the draft untouched.
	Validate func() error
	// Submit performs the network call.
	Submit func(ctx context.Context) error
	// OnSuccess runs after a successful submit, before the success toast.
	OnSuccess func()
	// Toasts receives submission feedback. Optional.
	Toasts *ToastPresenter
	// CloseDelay schedules an automatic Close after success. Zero disables it.
	CloseDelay time.Duration
	// SuccessMessage and FailureMessage override the default toast texts.
	SuccessMessage string
	FailureMessage string
}

// FormController drives one form's submit lifecycle. All methods are safe
// for concurrent use; a mutex stands in for the UI loop.
type FormController struct {
	mu       sync.Mutex
	opts     FormOptions
	state    FormState
	disposed bool
	closeT   *time.Timer
}

// NewFormController returns an idle controller.
func NewFormController(opts FormOptions) *FormController {
	if opts.SuccessMessage == "" {
		opts.SuccessMessage = "Saved."
	}
	if opts.FailureMessage == "" {
		opts.FailureMessage = "Something went wrong. Please try again."
	}
	return &FormController{opts: opts, state: FormIdle}
}

// State returns the current form state.
func (f *FormController) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates and submits the form. While a submission is in flight,
// further calls are ignored so a double click cannot produce a second
// network call. On failure the state returns to idle and the draft is left
// as the user typed it.
func (f *FormController) Submit(ctx context.Context) {
	f.mu.Lock()
	if f.disposed || f.state != FormIdle {
		f.mu.Unlock()
		return
	}
	if f.opts.Validate != nil {
		if err := f.opts.Validate(); err != nil {
			f.mu.Unlock()
			f.toastError(err)
			return
		}
	}
	f.state = FormSubmitting
	f.mu.Unlock()

	err := f.opts.Submit(ctx)

	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return
	}
	if err != nil {
		f.state = FormIdle
		f.mu.Unlock()
		f.toastError(err)
		return
	}
	f.state = FormSucceeded
	if f.opts.CloseDelay > 0 && f.closeT == nil {
		f.closeT = time.AfterFunc(f.opts.CloseDelay, f.Close)
	}
	onSuccess := f.opts.OnSuccess
	f.mu.Unlock()

	if onSuccess != nil {
		onSuccess()
	}
	if f.opts.Toasts != nil {
		f.opts.Toasts.Show(f.opts.SuccessMessage, ToastSuccess, 0)
	}
}

// toastError surfaces the server's message when the error carries one.
func (f *FormController) toastError(err error) {
	if f.opts.Toasts == nil {
		return
	}
	msg := f.opts.FailureMessage
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			msg = apiErr.Message
		}
	case err != nil:
		// Validation errors are user-facing by construction.
		msg = err.Error()
	}
	f.opts.Toasts.Show(msg, ToastError, 0)
}

// Close transitions to closed. Safe to call more than once; the scheduled
// auto-close and a manual close together still close exactly once.
func (f *FormController) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.disposed || f.state == FormClosed {
		return
	}
	if f.closeT != nil {
		f.closeT.Stop()
		f.closeT = nil
	}
	f.state = FormClosed
}

// Dispose detaches the controller. A submit response arriving afterwards
// must not mutate state or fire callbacks.
func (f *FormController) Dispose() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disposed = true
	f.state = FormClosed
	if f.closeT != nil {
		f.closeT.Stop()
		f.closeT = nil
	}
}
