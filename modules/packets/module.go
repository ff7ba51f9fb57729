// Package packets exposes the built-in packet record types.
package packets

import (
	"context"
	"reflect"

	"github.com/vk/bindgengo/internal/recordbind"
	"github.com/vk/bindgengo/internal/sink"
)

// Module implements the sink.Module interface for this package.
type Module struct{}

// SomePacket is a two-field demonstration record.
type SomePacket struct {
	ID          int32   `bind:"id"`
	SomePayload float32 `bind:"some_payload"`
}

// AnotherPacket carries a variable-length payload.
type AnotherPacket struct {
	ID             int32     `bind:"id"`
	AnotherPayload []float32 `bind:"another_payload"`
}

// records is the descriptor table for this module. Descriptor order is
// registration order; exposure names must be unique across all modules.
var records = []recordbind.Descriptor{
	{Name: "some_packet", Type: reflect.TypeOf(SomePacket{})},
	{Name: "another_packet", Type: reflect.TypeOf(AnotherPacket{})},
}

// Register generates and registers the bindings for every packet record.
func (m *Module) Register(ctx context.Context, s *sink.Sink) error {
	_, err := recordbind.Generate(ctx, s, records)
	return err
}
