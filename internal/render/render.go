package render

import (
	"fmt"

	"github.com/mxyns/bindgen-bridge/internal/common"
	"github.com/mxyns/bindgen-bridge/internal/diagnostic"
	"github.com/mxyns/bindgen-bridge/internal/mapping"
)

// Preference selects which discovered name wins when a composite type
// has both an original C name and resolved typedef aliases.
type Preference int

const (
	// PreferAlias picks a typedef name when one resolved, falling back
	// to the original declaration name.
	PreferAlias Preference = iota
	// PreferOriginal picks the original declaration name when known,
	// falling back to a typedef name.
	PreferOriginal
)

// String returns a human-readable preference name.
func (p Preference) String() string {
	switch p {
	case PreferAlias:
		return "alias"
	case PreferOriginal:
		return "original"
	default:
		return "unknown"
	}
}

// ParsePreference parses a preference name as given on the command line.
func ParsePreference(s string) (Preference, error) {
	switch s {
	case "alias":
		return PreferAlias, nil
	case "original":
		return PreferOriginal, nil
	default:
		return 0, fmt.Errorf("unknown name preference %q", s)
	}
}

// Rule is one rename instruction for the export toolchain: emit the
// type known internally as InternalName under ExternalName.
type Rule struct {
	InternalName string
	ExternalName string
}

// RenderError reports an aggregate whose internal reference integrity
// is broken, e.g. a resolved alias targeting a composite type that is
// not recorded. Unreachable through the collection API; it indicates
// the aggregate was mutated by hand between collection and render.
type RenderError struct {
	AliasName string
	Target    string
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("alias %q resolved to unknown composite type %q", e.AliasName, e.Target)
}

// Render projects the aggregate into rename rules, sorted by internal
// name. Types with no usable foreign name (anonymous, no resolved
// alias) are omitted and reported as warnings; pending aliases are
// reported as infos. The aggregate is only read.
func Render(m *mapping.NameMappings, pref Preference, diags *diagnostic.Diagnostics) ([]Rule, error) {
	for _, a := range m.Aliases() {
		if !a.Resolved() {
			continue
		}

		if _, ok := m.Lookup(a.Target); !ok {
			return nil, &RenderError{AliasName: a.Name, Target: a.Target}
		}
	}

	rules := make([]Rule, 0, m.Len())

	for _, ct := range m.Types() {
		name, ok := chooseName(ct, m.AliasesFor(ct.InternalName), pref)
		if !ok {
			diags.AddWarning("unnamed_type_omitted",
				"no C name discovered for type, omitted from rename rules",
				ct.InternalName, "")

			continue
		}

		rules = append(rules, Rule{InternalName: ct.InternalName, ExternalName: name})
	}

	for _, alias := range m.PendingAliases() {
		diags.AddInfo("unresolved_alias",
			"alias never matched a discovered composite type",
			"", alias)
	}

	return rules, nil
}

// chooseName picks the external name for one composite type. aliases
// holds the resolved alias names in lexicographic order, so the
// documented tie-break (smallest alias name wins) is the first entry.
func chooseName(ct *mapping.CompositeType, aliases []string, pref Preference) (string, bool) {
	if pref == PreferOriginal && ct.HasOriginalName() {
		return ct.OriginalName, true
	}

	if alias, ok := common.First(aliases); ok {
		return alias, true
	}

	if ct.HasOriginalName() {
		return ct.OriginalName, true
	}

	return "", false
}
