package sink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/bindgengo/internal/manifest"
	"github.com/zclconf/go-cty/cty"
)

// populateTestSink registers one record ("some_packet": id number,
// some_payload number) and the 2x2 "tensor" family corner.
func populateTestSink(t *testing.T) *Sink {
	t.Helper()
	ctx := context.Background()
	s := New()

	h, err := s.RegisterType(ctx, "some_packet", newTestConstructor(cty.Number, cty.Number))
	require.NoError(t, err)
	fn := func(any) (cty.Value, error) { return cty.NilVal, nil }
	require.NoError(t, s.AddAccessor(h, "id", fn))
	require.NoError(t, s.AddAccessor(h, "some_payload", fn))

	for _, name := range []string{"tensor_1d_f", "tensor_1d_d", "tensor_2d_f", "tensor_2d_d"} {
		_, err := s.RegisterOpaqueType(ctx, name)
		require.NoError(t, err)
	}
	return s
}

func matchingModel() *manifest.Model {
	return &manifest.Model{
		Records: map[string]*manifest.RecordDefinition{
			"some_packet": {
				Name: "some_packet",
				Fields: []manifest.FieldDefinition{
					{Name: "id", Type: cty.Number},
					{Name: "some_payload", Type: cty.Number},
				},
			},
		},
		Families: map[string]*manifest.FamilyDefinition{
			"tensor": {
				Prefix:     "tensor",
				Dimensions: []string{"1d", "2d"},
				Scalars:    []string{"f", "d"},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("matching manifests pass", func(t *testing.T) {
		s := populateTestSink(t)
		assert.NoError(t, s.Validate(ctx, matchingModel()))
	})

	t.Run("declared record never registered", func(t *testing.T) {
		s := populateTestSink(t)
		model := matchingModel()
		model.Records["ghost"] = &manifest.RecordDefinition{Name: "ghost"}

		err := s.Validate(ctx, model)
		assert.ErrorContains(t, err, "record 'ghost': declared in manifest but never registered")
	})

	t.Run("registration not declared anywhere", func(t *testing.T) {
		s := populateTestSink(t)
		_, err := s.RegisterOpaqueType(ctx, "stray")
		require.NoError(t, err)

		err = s.Validate(ctx, matchingModel())
		assert.ErrorContains(t, err, "registration 'stray' is not declared in any manifest")
	})

	t.Run("field count mismatch", func(t *testing.T) {
		s := populateTestSink(t)
		model := matchingModel()
		model.Records["some_packet"].Fields = model.Records["some_packet"].Fields[:1]

		err := s.Validate(ctx, model)
		assert.ErrorContains(t, err, "manifest declares 1 fields, registration has 2")
	})

	t.Run("field name mismatch at a position", func(t *testing.T) {
		s := populateTestSink(t)
		model := matchingModel()
		model.Records["some_packet"].Fields[1].Name = "other_payload"

		err := s.Validate(ctx, model)
		assert.ErrorContains(t, err, "position 1")
	})

	t.Run("field type mismatch", func(t *testing.T) {
		s := populateTestSink(t)
		model := matchingModel()
		model.Records["some_packet"].Fields[1].Type = cty.String

		err := s.Validate(ctx, model)
		assert.ErrorContains(t, err, "type mismatch")
	})

	t.Run("missing family instantiation", func(t *testing.T) {
		s := populateTestSink(t)
		model := matchingModel()
		model.Families["tensor"].Dimensions = append(model.Families["tensor"].Dimensions, "3d")

		err := s.Validate(ctx, model)
		assert.ErrorContains(t, err, "'tensor_3d_f' declared in manifest but never registered")
	})

	t.Run("family instantiation registered with a constructor", func(t *testing.T) {
		s := populateTestSink(t)
		_, err := s.RegisterType(ctx, "tensor_3d_f", newTestConstructor())
		require.NoError(t, err)
		model := matchingModel()
		model.Families["tensor"].Dimensions = append(model.Families["tensor"].Dimensions, "3d")

		err = s.Validate(ctx, model)
		require.Error(t, err)
		assert.ErrorContains(t, err, "'tensor_3d_f' must be opaque")
		assert.ErrorContains(t, err, "'tensor_3d_d' declared in manifest but never registered")
	})
}
