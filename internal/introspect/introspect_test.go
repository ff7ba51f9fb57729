package introspect

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type samplePacket struct {
	ID          int32   `bind:"id"`
	SomePayload float32 `bind:"some_payload"`
}

type emptyRecord struct{}

type untaggedRecord struct {
	ID int32
}

type privateRecord struct {
	id int32 `bind:"id"` //nolint:unused
}

type duplicateTagRecord struct {
	A int32 `bind:"x"`
	B int32 `bind:"x"`
}

type unsupportedFieldRecord struct {
	Ch chan int `bind:"ch"`
}

func TestFields(t *testing.T) {
	t.Run("two-field record in declaration order", func(t *testing.T) {
		fields, err := Fields(reflect.TypeOf(samplePacket{}))
		require.NoError(t, err)
		require.Len(t, fields, 2)

		assert.Equal(t, "id", fields[0].Name)
		assert.True(t, fields[0].Type.Equals(cty.Number))
		assert.Equal(t, reflect.TypeOf(int32(0)), fields[0].GoType)
		assert.Equal(t, 0, fields[0].Index)

		assert.Equal(t, "some_payload", fields[1].Name)
		assert.True(t, fields[1].Type.Equals(cty.Number))
		assert.Equal(t, reflect.TypeOf(float32(0)), fields[1].GoType)
		assert.Equal(t, 1, fields[1].Index)
	})

	t.Run("slice field implies a list type", func(t *testing.T) {
		type rec struct {
			Values []float32 `bind:"values"`
		}
		fields, err := Fields(reflect.TypeOf(rec{}))
		require.NoError(t, err)
		require.Len(t, fields, 1)
		assert.True(t, fields[0].Type.Equals(cty.List(cty.Number)))
	})

	t.Run("zero-field record yields empty list without error", func(t *testing.T) {
		fields, err := Fields(reflect.TypeOf(emptyRecord{}))
		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	t.Run("error cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			recordType  reflect.Type
			errContains string
		}{
			{"nil type", nil, "record type is nil"},
			{"not a struct", reflect.TypeOf(42), "not a struct"},
			{"missing bind tag", reflect.TypeOf(untaggedRecord{}), "no bind tag"},
			{"unexported field", reflect.TypeOf(privateRecord{}), "unexported"},
			{"duplicate field name", reflect.TypeOf(duplicateTagRecord{}), "duplicate field name 'x'"},
			{"unsupported field type", reflect.TypeOf(unsupportedFieldRecord{}), "cannot imply cty type"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Fields(tc.recordType)
				assert.ErrorContains(t, err, tc.errContains)
			})
		}
	})
}

func TestFieldValue(t *testing.T) {
	fields, err := Fields(reflect.TypeOf(samplePacket{}))
	require.NoError(t, err)

	rec := samplePacket{ID: 7, SomePayload: 1.5}

	t.Run("reads the stored value exactly", func(t *testing.T) {
		id, err := fields[0].Value(rec)
		require.NoError(t, err)
		assert.True(t, id.RawEquals(cty.NumberIntVal(7)))

		payload, err := fields[1].Value(rec)
		require.NoError(t, err)
		assert.True(t, payload.RawEquals(cty.NumberFloatVal(1.5)))
	})

	t.Run("accepts a pointer to the record", func(t *testing.T) {
		id, err := fields[0].Value(&rec)
		require.NoError(t, err)
		assert.True(t, id.RawEquals(cty.NumberIntVal(7)))
	})

	t.Run("rejects nil and non-struct instances", func(t *testing.T) {
		_, err := fields[0].Value((*samplePacket)(nil))
		assert.ErrorContains(t, err, "nil record instance")

		_, err = fields[0].Value("nope")
		assert.ErrorContains(t, err, "not a struct")
	})
}
