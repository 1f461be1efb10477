package interop

import "sync/atomic"

// debugRelay holds the Go function behind the process-wide native debug
// callback. Only the latest registration receives messages.
type debugRelay struct {
	target atomic.Pointer[func(string)]
}

// set installs fn and returns the token that releases it.
func (r *debugRelay) set(fn func(string)) *func(string) {
	p := &fn
	r.target.Store(p)
	return p
}

// release clears the relay if token is still the installed function.
// A later registration is left alone.
func (r *debugRelay) release(token *func(string)) {
	if token == nil {
		return
	}
	r.target.CompareAndSwap(token, nil)
}

func (r *debugRelay) forward(msg string) {
	if fn := r.target.Load(); fn != nil {
		(*fn)(msg)
	}
}
