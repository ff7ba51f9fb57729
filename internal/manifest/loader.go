// Package manifest loads binding manifests from .hcl files into a unified
// model the sink can validate registrations against.
package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/bindgengo/internal/ctxlog"
	"github.com/vk/bindgengo/internal/fsutil"
	"github.com/vk/bindgengo/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// FieldDefinition is one declared record field with its type resolved.
type FieldDefinition struct {
	Name string
	Type cty.Type
}

// RecordDefinition is one declared record: name plus ordered field list.
type RecordDefinition struct {
	Name   string
	Fields []FieldDefinition
}

// FamilyDefinition is one declared type family: the name prefix and the
// ordered axis fragments whose cross product names the expected registrations.
type FamilyDefinition struct {
	Prefix     string
	Dimensions []string
	Scalars    []string
}

// Model is the merged content of every manifest file found under a path.
type Model struct {
	Records  map[string]*RecordDefinition
	Families map[string]*FamilyDefinition
}

// Load walks manifestPath recursively, parses every .hcl file, and merges the
// declarations into a single Model. Duplicate record names or family prefixes
// across files are configuration errors.
func Load(ctx context.Context, manifestPath string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading binding manifests...", "path", manifestPath)

	filePaths, err := fsutil.FindFilesByExtension(manifestPath, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to walk manifest path '%s': %w", manifestPath, err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path.", "path", manifestPath)
	}

	model := &Model{
		Records:  make(map[string]*RecordDefinition),
		Families: make(map[string]*FamilyDefinition),
	}

	parser := hclparse.NewParser()
	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", filePath, diags)
		}

		var cfg schema.ManifestConfig
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &cfg); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", filePath, diags)
		}

		if err := model.merge(&cfg); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", filePath, err)
		}
		logger.Debug("Loaded manifest file.", "file", filePath)
	}

	logger.Debug("Manifests loaded.", "records", len(model.Records), "families", len(model.Families))
	return model, nil
}

func (m *Model) merge(cfg *schema.ManifestConfig) error {
	for _, rec := range cfg.Records {
		if _, exists := m.Records[rec.Name]; exists {
			return fmt.Errorf("record '%s' declared more than once", rec.Name)
		}

		def := &RecordDefinition{Name: rec.Name, Fields: make([]FieldDefinition, 0, len(rec.Fields))}
		seen := make(map[string]struct{}, len(rec.Fields))
		for _, f := range rec.Fields {
			if _, dup := seen[f.Name]; dup {
				return fmt.Errorf("record '%s': field '%s' declared more than once", rec.Name, f.Name)
			}
			seen[f.Name] = struct{}{}

			fieldType, err := typeExprToCtyType(f.Type)
			if err != nil {
				return fmt.Errorf("record '%s', field '%s': %w", rec.Name, f.Name, err)
			}
			def.Fields = append(def.Fields, FieldDefinition{Name: f.Name, Type: fieldType})
		}
		m.Records[rec.Name] = def
	}

	for _, fam := range cfg.Families {
		if _, exists := m.Families[fam.Prefix]; exists {
			return fmt.Errorf("family '%s' declared more than once", fam.Prefix)
		}
		for _, frag := range fam.Dimensions {
			if frag == "" {
				return fmt.Errorf("family '%s': empty dimension fragment", fam.Prefix)
			}
		}
		for _, frag := range fam.Scalars {
			if frag == "" {
				return fmt.Errorf("family '%s': empty scalar fragment", fam.Prefix)
			}
		}
		m.Families[fam.Prefix] = &FamilyDefinition{
			Prefix:     fam.Prefix,
			Dimensions: fam.Dimensions,
			Scalars:    fam.Scalars,
		}
	}

	return nil
}

// ExpectedNames returns the family's composed exposure names in cross-product
// order, dimension-major.
func (f *FamilyDefinition) ExpectedNames() []string {
	names := make([]string, 0, len(f.Dimensions)*len(f.Scalars))
	for _, d := range f.Dimensions {
		for _, s := range f.Scalars {
			names = append(names, f.Prefix+"_"+d+"_"+s)
		}
	}
	return names
}
