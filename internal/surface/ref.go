package surface

import (
	"reflect"
	"sync"
)

// Ref is a settable reference to a Surface that may not exist yet. A
// controller is constructed against a Ref and resolves it on every action,
// so the host can attach the surface later or swap it on remount.
type Ref struct {
	mu     sync.RWMutex
	target Surface
}

// NewRef creates a Ref, optionally already bound.
func NewRef(target Surface) *Ref {
	r := &Ref{}
	r.Set(target)
	return r
}

// Set binds the reference. A nil pointer wrapped in a Surface unbinds it,
// the same as Clear.
func (r *Ref) Set(target Surface) {
	if isNil(target) {
		target = nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = target
}

// Clear unbinds the reference.
func (r *Ref) Clear() {
	r.Set(nil)
}

// Get returns the bound surface. The second result is false when nothing
// is bound. A nil Ref is never bound.
func (r *Ref) Get() (Surface, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.target, r.target != nil
}

func isNil(s Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
