package sink

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/bindgengo/internal/ctxlog"
	"github.com/vk/bindgengo/internal/manifest"
)

// Validate performs a strict parity check between the loaded manifests and
// the registrations the generators produced. Every declared record must be
// registered with the declared fields in the declared order, every declared
// family cross product must be present as opaque registrations, and nothing
// may be registered that no manifest declares.
func (s *Sink) Validate(ctx context.Context, model *manifest.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	declared := make(map[string]struct{}, len(model.Records))

	for name, def := range model.Records {
		declared[name] = struct{}{}

		h, ok := s.Lookup(name)
		if !ok {
			errs = append(errs, fmt.Sprintf("record '%s': declared in manifest but never registered", name))
			continue
		}
		if h.Opaque() {
			errs = append(errs, fmt.Sprintf("record '%s': manifest declares fields, but the registration is opaque", name))
			continue
		}

		accessors := h.Accessors()
		if h.Arity() != len(accessors) {
			errs = append(errs, fmt.Sprintf("record '%s': constructor arity %d does not match accessor count %d", name, h.Arity(), len(accessors)))
			continue
		}
		if len(accessors) != len(def.Fields) {
			errs = append(errs, fmt.Sprintf("record '%s': manifest declares %d fields, registration has %d", name, len(def.Fields), len(accessors)))
			continue
		}

		paramTypes := h.ParamTypes()
		for i, fieldDef := range def.Fields {
			if accessors[i].Name != fieldDef.Name {
				errs = append(errs, fmt.Sprintf("record '%s', position %d: manifest declares field '%s', registration has '%s'", name, i, fieldDef.Name, accessors[i].Name))
				continue
			}
			if fieldDef.Type.IsPrimitiveType() || fieldDef.Type.IsListType() || fieldDef.Type.IsMapType() || fieldDef.Type.IsSetType() {
				if !fieldDef.Type.Equals(paramTypes[i]) {
					errs = append(errs, fmt.Sprintf("record '%s', field '%s': type mismatch, manifest declares '%s' but registration provides '%s'",
						name, fieldDef.Name, fieldDef.Type.FriendlyName(), paramTypes[i].FriendlyName()))
				}
			} else {
				logger.Warn("Manifest field has 'type = any', which disables static type checking. Consider a specific type like 'string', 'number', or 'bool'.",
					"record", name, "field", fieldDef.Name)
			}
		}
	}

	for _, fam := range model.Families {
		for _, expected := range fam.ExpectedNames() {
			declared[expected] = struct{}{}

			h, ok := s.Lookup(expected)
			if !ok {
				errs = append(errs, fmt.Sprintf("family '%s': instantiation '%s' declared in manifest but never registered", fam.Prefix, expected))
				continue
			}
			if !h.Opaque() {
				errs = append(errs, fmt.Sprintf("family '%s': instantiation '%s' must be opaque, but was registered with a constructor", fam.Prefix, expected))
			}
		}
	}

	for _, name := range s.Names() {
		if _, ok := declared[name]; !ok {
			errs = append(errs, fmt.Sprintf("registration '%s' is not declared in any manifest", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("sink validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
