// Package introspect extracts the ordered field list of a record struct.
//
// A record opts in to exposure by tagging every field with `bind:"<name>"`.
// The tag is the record's explicit field-list declaration: a struct with an
// untagged or unexported field is not a record and cannot be introspected.
// Introspection failures are startup configuration errors, never runtime ones.
package introspect

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// TagName is the struct tag that declares a field's exposure name.
const TagName = "bind"

// Field describes one exposed field of a record, in declaration order.
type Field struct {
	// Name is the exposure name taken from the bind tag.
	Name string
	// Type is the wire type implied from the Go field type.
	Type cty.Type
	// GoType is the underlying Go type of the struct field.
	GoType reflect.Type
	// Index is the field's position in the struct declaration.
	Index int
}

// Value reads the field from an instance of the record and returns it as a
// cty.Value. The instance may be the record value itself or a pointer to it.
// The returned value is exactly the stored field value, no conversion beyond
// the cty encoding.
func (f Field) Value(instance any) (cty.Value, error) {
	v := reflect.ValueOf(instance)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return cty.NilVal, fmt.Errorf("accessor '%s': nil record instance", f.Name)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return cty.NilVal, fmt.Errorf("accessor '%s': instance is %s, not a struct", f.Name, v.Kind())
	}

	val, err := gocty.ToCtyValue(v.Field(f.Index).Interface(), f.Type)
	if err != nil {
		return cty.NilVal, fmt.Errorf("accessor '%s': %w", f.Name, err)
	}
	return val, nil
}

// Fields returns the record's field descriptors in declaration order.
//
// An error marks the type as non-introspectable: it is not a struct, a field
// is unexported or missing its bind tag, a tag name repeats, or a field's Go
// type has no cty equivalent. A struct with zero fields is a valid record and
// yields an empty (non-nil-error) result.
func Fields(recordType reflect.Type) ([]Field, error) {
	if recordType == nil {
		return nil, fmt.Errorf("record type is nil")
	}
	if recordType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("record type %s is %s, not a struct", recordType, recordType.Kind())
	}

	fields := make([]Field, 0, recordType.NumField())
	seen := make(map[string]struct{}, recordType.NumField())

	for i := 0; i < recordType.NumField(); i++ {
		sf := recordType.Field(i)
		if !sf.IsExported() {
			return nil, fmt.Errorf("record %s: field '%s' is unexported; records carry no private state", recordType, sf.Name)
		}

		name := sf.Tag.Get(TagName)
		if name == "" {
			return nil, fmt.Errorf("record %s: field '%s' has no %s tag; the record is not declared introspectable", recordType, sf.Name, TagName)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("record %s: duplicate field name '%s'", recordType, name)
		}
		seen[name] = struct{}{}

		ctyType, err := gocty.ImpliedType(reflect.Zero(sf.Type).Interface())
		if err != nil {
			return nil, fmt.Errorf("record %s, field '%s': cannot imply cty type from %s: %w", recordType, name, sf.Type, err)
		}

		fields = append(fields, Field{
			Name:   name,
			Type:   ctyType,
			GoType: sf.Type,
			Index:  i,
		})
	}

	return fields, nil
}
