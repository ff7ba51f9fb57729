// Package familybind registers a parametric type family over the cross
// product of its axes.
//
// An instantiation of the family carries no constructor and no fields; it is
// a pure named identity, so each registration is an opaque, name-only entry
// in the sink. Iteration order is part of the contract: the dimension axis is
// the outer (major) loop and the scalar axis the inner (minor) one, so the
// registration order is reproducible run to run.
package familybind

import (
	"context"
	"fmt"

	"github.com/vk/bindgengo/internal/ctxlog"
	"github.com/vk/bindgengo/internal/sink"
)

// Instance is one point of the cross product: a (dimension, scalar) pair and
// the exposure name composed from the family prefix and the axis fragments.
type Instance struct {
	Dimension Dimension
	Scalar    Scalar
	Name      string
}

// Instances computes the dimension-major, scalar-minor cross product of the
// axes and composes one exposure name per pair as
// "<prefix>_<dimensionFragment>_<scalarFragment>".
//
// Empty axes are valid and yield an empty result. A malformed axis entry
// (empty fragment, rank below 1) is a configuration error.
func Instances(prefix string, dims []Dimension, scalars []Scalar) ([]Instance, error) {
	if prefix == "" {
		return nil, fmt.Errorf("family prefix must not be empty")
	}
	for _, d := range dims {
		if d.Fragment == "" {
			return nil, fmt.Errorf("family '%s': dimension %d has no display fragment", prefix, d.Rank)
		}
		if d.Rank < 1 {
			return nil, fmt.Errorf("family '%s': dimension fragment '%s' has invalid rank %d", prefix, d.Fragment, d.Rank)
		}
	}
	for _, sc := range scalars {
		if sc.Fragment == "" {
			return nil, fmt.Errorf("family '%s': scalar kind %d has no display fragment", prefix, sc.Kind)
		}
	}

	instances := make([]Instance, 0, len(dims)*len(scalars))
	for _, d := range dims {
		for _, sc := range scalars {
			instances = append(instances, Instance{
				Dimension: d,
				Scalar:    sc,
				Name:      prefix + "_" + d.Fragment + "_" + sc.Fragment,
			})
		}
	}
	return instances, nil
}

// Generate registers one opaque type per cross-product pair, in cross-product
// order, and returns the handles in the same order.
func Generate(ctx context.Context, s *sink.Sink, prefix string, dims []Dimension, scalars []Scalar) ([]*sink.Handle, error) {
	logger := ctxlog.FromContext(ctx)

	instances, err := Instances(prefix, dims, scalars)
	if err != nil {
		return nil, err
	}

	handles := make([]*sink.Handle, 0, len(instances))
	for _, inst := range instances {
		h, err := s.RegisterOpaqueType(ctx, inst.Name)
		if err != nil {
			return nil, fmt.Errorf("family '%s': %w", prefix, err)
		}
		handles = append(handles, h)
	}
	logger.Debug("Family bindings generated.", "prefix", prefix, "count", len(handles))
	return handles, nil
}
