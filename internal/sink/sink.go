package sink

import (
	"context"
	"fmt"

	"github.com/vk/bindgengo/internal/ctxlog"
)

// Module is the interface that all built-in modules implement to be registered.
type Module interface {
	Register(ctx context.Context, s *Sink) error
}

// Sink holds every exposure registered for a single application instance.
type Sink struct {
	types map[string]*Handle
	order []string
}

// New creates and initializes an empty Sink.
func New() *Sink {
	return &Sink{
		types: make(map[string]*Handle),
	}
}

// RegisterType registers a constructible type under the given exposure name.
// The returned handle accepts accessors via AddAccessor and is immediately
// invocable. Registering a name twice is an error.
func (s *Sink) RegisterType(ctx context.Context, name string, ctor *Constructor) (*Handle, error) {
	if ctor == nil {
		return nil, fmt.Errorf("register '%s': nil constructor", name)
	}
	h := &Handle{name: name, ctor: ctor, accessorIndex: make(map[string]int)}
	if err := s.add(name, h); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Registered type.", "name", name, "arity", len(ctor.ParamTypes))
	return h, nil
}

// RegisterOpaqueType registers a name-only exposure: no constructor, no
// accessors, identity only.
func (s *Sink) RegisterOpaqueType(ctx context.Context, name string) (*Handle, error) {
	h := &Handle{name: name}
	if err := s.add(name, h); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Registered opaque type.", "name", name)
	return h, nil
}

// AddAccessor attaches a named accessor to a previously registered handle.
// Accessor order is the order of AddAccessor calls.
func (s *Sink) AddAccessor(h *Handle, name string, fn AccessorFunc) error {
	if h == nil {
		return fmt.Errorf("add accessor '%s': nil handle", name)
	}
	if h.Opaque() {
		return fmt.Errorf("add accessor '%s': type '%s' is opaque", name, h.name)
	}
	if fn == nil {
		return fmt.Errorf("type '%s': nil accessor function for '%s'", h.name, name)
	}
	if _, exists := h.accessorIndex[name]; exists {
		return fmt.Errorf("type '%s': accessor '%s' already registered", h.name, name)
	}
	h.accessorIndex[name] = len(h.accessors)
	h.accessors = append(h.accessors, Accessor{Name: name, Fn: fn})
	return nil
}

// Lookup returns the handle registered under name, if any.
func (s *Sink) Lookup(name string) (*Handle, bool) {
	h, ok := s.types[name]
	return h, ok
}

// Names returns all registered exposure names in registration order.
func (s *Sink) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of registered exposures.
func (s *Sink) Len() int {
	return len(s.order)
}

func (s *Sink) add(name string, h *Handle) error {
	if name == "" {
		return fmt.Errorf("exposure name must not be empty")
	}
	if _, exists := s.types[name]; exists {
		return fmt.Errorf("exposure name '%s' already registered", name)
	}
	s.types[name] = h
	s.order = append(s.order, name)
	return nil
}
