// Package recordbind turns record descriptors into sink registrations.
//
// For each descriptor the generator introspects the record's field list and
// synthesizes the full exposure mechanically: one constructor whose positional
// parameters are the field types in declaration order, plus one accessor per
// field under the field's declared name. No per-record code is written by hand.
package recordbind

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/bindgengo/internal/ctxlog"
	"github.com/vk/bindgengo/internal/introspect"
	"github.com/vk/bindgengo/internal/sink"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Descriptor is one entry of the record descriptor table: an exposure name
// paired with the record's Go type. The table is fixed in source; it is not
// extensible at runtime.
type Descriptor struct {
	Name string
	Type reflect.Type
}

// Generate registers every descriptor with the sink, in table order, and
// returns the handles in the same order.
//
// A record that fails introspection aborts the whole pass with an error; it is
// never skipped. Duplicate exposure names surface as the sink's collision
// error — the generator does not deduplicate.
func Generate(ctx context.Context, s *sink.Sink, descriptors []Descriptor) ([]*sink.Handle, error) {
	logger := ctxlog.FromContext(ctx)

	handles := make([]*sink.Handle, 0, len(descriptors))
	for _, d := range descriptors {
		h, err := generateOne(ctx, s, d)
		if err != nil {
			return nil, fmt.Errorf("record '%s': %w", d.Name, err)
		}
		logger.Debug("Record binding generated.", "name", d.Name, "fields", h.Arity())
		handles = append(handles, h)
	}
	return handles, nil
}

func generateOne(ctx context.Context, s *sink.Sink, d Descriptor) (*sink.Handle, error) {
	fields, err := introspect.Fields(d.Type)
	if err != nil {
		return nil, err
	}

	h, err := s.RegisterType(ctx, d.Name, newConstructor(d.Type, fields))
	if err != nil {
		return nil, err
	}

	for _, f := range fields {
		if err := s.AddAccessor(h, f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// newConstructor derives the positional constructor for a record type. The
// parameter list mirrors the field list one-to-one: arity equals field count
// and parameter i fills field i. A zero-field record yields a zero-argument
// constructor.
func newConstructor(recordType reflect.Type, fields []introspect.Field) *sink.Constructor {
	paramTypes := make([]cty.Type, len(fields))
	for i, f := range fields {
		paramTypes[i] = f.Type
	}

	return &sink.Constructor{
		ParamTypes: paramTypes,
		Fn: func(args []cty.Value) (any, error) {
			rec := reflect.New(recordType)
			for i, f := range fields {
				target := rec.Elem().Field(f.Index).Addr().Interface()
				if err := gocty.FromCtyValue(args[i], target); err != nil {
					return nil, fmt.Errorf("field '%s': %w", f.Name, err)
				}
			}
			return rec.Interface(), nil
		},
	}
}
