// Package schema declares the HCL block structures of binding manifests.
//
// A manifest is the public declaration of what the compiled binary exposes.
// At startup the registrations synthesized from Go code are checked against
// the manifests, so the two can never drift apart silently.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// FieldDefinition declares a single exposed field of a record.
type FieldDefinition struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
}

// RecordDefinition declares a constructible record type: its exposure name
// and its ordered field list.
type RecordDefinition struct {
	Name        string             `hcl:"name,label"`
	Description string             `hcl:"description,optional"`
	Fields      []*FieldDefinition `hcl:"field,block"`
}

// FamilyDefinition declares a parametric type family by its name prefix and
// the display fragments of its two axes. The cross product of the fragments,
// dimension-major, is the set of expected opaque registrations.
type FamilyDefinition struct {
	Prefix      string   `hcl:"prefix,label"`
	Description string   `hcl:"description,optional"`
	Dimensions  []string `hcl:"dimensions"`
	Scalars     []string `hcl:"scalars"`
}

// ManifestConfig is the top-level structure of one manifest file.
type ManifestConfig struct {
	Records  []*RecordDefinition `hcl:"record,block"`
	Families []*FamilyDefinition `hcl:"family,block"`
	Body     hcl.Body            `hcl:",remain"`
}
