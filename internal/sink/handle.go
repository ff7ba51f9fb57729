package sink

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// AccessorFunc reads one field from a record instance.
type AccessorFunc func(instance any) (cty.Value, error)

// Accessor is one named field reader attached to a handle.
type Accessor struct {
	Name string
	Fn   AccessorFunc
}

// Constructor holds the compiled construction path for a registered type:
// positional, full-arity, one parameter per field, in field declaration order.
type Constructor struct {
	ParamTypes []cty.Type
	Fn         func(args []cty.Value) (any, error)
}

// Handle identifies one registered exposure inside the Sink.
type Handle struct {
	name          string
	ctor          *Constructor
	accessors     []Accessor
	accessorIndex map[string]int
}

// Name returns the exposure name the handle was registered under.
func (h *Handle) Name() string { return h.name }

// Opaque reports whether the handle is a name-only registration.
func (h *Handle) Opaque() bool { return h.ctor == nil }

// Arity returns the constructor's parameter count. Opaque handles have arity 0.
func (h *Handle) Arity() int {
	if h.ctor == nil {
		return 0
	}
	return len(h.ctor.ParamTypes)
}

// ParamTypes returns the constructor's parameter types in positional order.
func (h *Handle) ParamTypes() []cty.Type {
	if h.ctor == nil {
		return nil
	}
	out := make([]cty.Type, len(h.ctor.ParamTypes))
	copy(out, h.ctor.ParamTypes)
	return out
}

// Accessors returns the handle's accessors in registration order.
func (h *Handle) Accessors() []Accessor {
	out := make([]Accessor, len(h.accessors))
	copy(out, h.accessors)
	return out
}

// New invokes the constructor. Arity and parameter types are checked strictly:
// there are no defaults, no partial construction, and no conversions.
func (h *Handle) New(args ...cty.Value) (any, error) {
	if h.ctor == nil {
		return nil, fmt.Errorf("type '%s' is opaque and has no constructor", h.name)
	}
	if len(args) != len(h.ctor.ParamTypes) {
		return nil, fmt.Errorf("type '%s': constructor takes %d arguments, got %d", h.name, len(h.ctor.ParamTypes), len(args))
	}
	for i, arg := range args {
		if !arg.Type().Equals(h.ctor.ParamTypes[i]) {
			return nil, fmt.Errorf("type '%s', argument %d: want %s, got %s",
				h.name, i, h.ctor.ParamTypes[i].FriendlyName(), arg.Type().FriendlyName())
		}
	}
	return h.ctor.Fn(args)
}

// Get invokes the named accessor on a record instance.
func (h *Handle) Get(instance any, field string) (cty.Value, error) {
	idx, ok := h.accessorIndex[field]
	if !ok {
		return cty.NilVal, fmt.Errorf("type '%s' has no accessor '%s'", h.name, field)
	}
	return h.accessors[idx].Fn(instance)
}
