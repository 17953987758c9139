package client

import (
	"sync"
	"time"
)

// ToastKind classifies a notice for presentation.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// Toast is a transient user-facing notice.
type Toast struct {
	Message string
	Kind    ToastKind
}

// DefaultToastDuration applies when Show is called with a zero duration.
const DefaultToastDuration = 4 * time.Second

// ToastPresenter holds at most one visible notice. Showing a new one
// replaces the current notice and restarts the auto-dismiss timer.
type ToastPresenter struct {
	mu      sync.Mutex
	current *Toast
	timer   *time.Timer
	gen     uint64
}

// NewToastPresenter returns an empty presenter.
func NewToastPresenter() *ToastPresenter {
	return &ToastPresenter{}
}

// Show displays a notice, replacing any currently visible one. The
// auto-dismiss timer is re-armed from now for the new notice.
func (p *ToastPresenter) Show(message string, kind ToastKind, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
	}
	p.gen++
	gen := p.gen
	p.current = &Toast{Message: message, Kind: kind}
	// The generation check keeps a stale timer that already fired from
	// taking down the notice that replaced its own.
	p.timer = time.AfterFunc(duration, func() { p.dismissGen(gen) })
}

func (p *ToastPresenter) dismissGen(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != gen {
		return
	}
	p.timer = nil
	p.current = nil
}

// Dismiss hides the current notice. Calling it with nothing visible is a
// no-op, so the timer racing a manual dismiss is harmless.
func (p *ToastPresenter) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.current = nil
}

// Current returns the visible notice, or nil.
func (p *ToastPresenter) Current() *Toast {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	c := *p.current
	return &c
}
