package mapping

import "fmt"

// RecordType records a composite type by internal name. The call is
// idempotent: if the name is already known the existing entry is
// returned unchanged, otherwise a new entry with no original name is
// inserted.
func (m *NameMappings) RecordType(internalName string, kind CompKind) *CompositeType {
	if ct, ok := m.types[internalName]; ok {
		return ct
	}

	ct := &CompositeType{
		InternalName: internalName,
		Kind:         kind,
	}
	m.types[internalName] = ct

	return ct
}

// SetOriginalName records the C declaration name of a known composite
// type. The name is set-on-first-write: setting the same value again
// is a no-op, setting a different value returns a *ConflictError. This
// defends against the importer visiting the same declaration twice
// with inconsistent information.
func (m *NameMappings) SetOriginalName(internalName, originalName string) error {
	ct, ok := m.types[internalName]
	if !ok {
		return fmt.Errorf("unknown composite type %q", internalName)
	}

	if ct.OriginalName == originalName {
		return nil
	}

	if ct.OriginalName != "" {
		return &ConflictError{
			Name:     internalName,
			Existing: ct.OriginalName,
			Incoming: originalName,
		}
	}

	ct.OriginalName = originalName

	return nil
}

// Lookup returns the composite type recorded under the given internal
// name, if any.
func (m *NameMappings) Lookup(internalName string) (*CompositeType, bool) {
	ct, ok := m.types[internalName]
	return ct, ok
}
