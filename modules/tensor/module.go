// Package tensor exposes the tensor type family over its canonical axes.
package tensor

import (
	"context"

	"github.com/vk/bindgengo/internal/familybind"
	"github.com/vk/bindgengo/internal/sink"
)

// Prefix is the family's exposure-name prefix.
const Prefix = "tensor"

// Module implements the sink.Module interface for this package.
type Module struct{}

// Register registers one opaque type per (dimension, scalar) pair, e.g.
// "tensor_1d_f" through "tensor_6d_d".
func (m *Module) Register(ctx context.Context, s *sink.Sink) error {
	_, err := familybind.Generate(ctx, s, Prefix, familybind.Dimensions, familybind.Scalars)
	return err
}
