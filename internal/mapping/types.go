package mapping

import (
	"fmt"
	"sort"
	"strings"
)

// CompKind represents the kind of a C composite type.
type CompKind int

const (
	CompKindStruct CompKind = iota
	CompKindUnion
)

// String returns a human-readable kind name.
func (k CompKind) String() string {
	switch k {
	case CompKindStruct:
		return "struct"
	case CompKindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// ParseCompKind parses a kind name as it appears in a discovery log.
func ParseCompKind(s string) (CompKind, error) {
	switch s {
	case "struct":
		return CompKindStruct, nil
	case "union":
		return CompKindUnion, nil
	default:
		return 0, fmt.Errorf("unknown composite kind %q", s)
	}
}

// CompositeType is one imported C struct or union.
type CompositeType struct {
	// InternalName is the Go name the importer assigned to the type.
	// It is the unique key of the entry and never changes.
	InternalName string
	// OriginalName is the canonical C declaration name ("struct foo",
	// "union bar"). Empty until discovered; anonymous types never get
	// one.
	OriginalName string
	// Kind is struct or union.
	Kind CompKind
}

// HasOriginalName reports whether the C declaration name is known.
func (c *CompositeType) HasOriginalName() bool {
	return c.OriginalName != ""
}

// Alias is one C typedef name referring to a composite type.
type Alias struct {
	// Name is the typedef name, unique within one import pass.
	Name string
	// Target is the internal name of the composite type the alias
	// refers to.
	Target string

	resolved bool
}

// Resolved reports whether the alias target has been matched to a
// known composite type. An unresolved alias is pending: it is kept
// around in case the target is discovered later in the pass.
func (a *Alias) Resolved() bool {
	return a.resolved
}

// NameMappings accumulates every name fact of one import pass. The
// zero value is not usable; construct with NewNameMappings.
type NameMappings struct {
	types   map[string]*CompositeType
	aliases map[string]*Alias
}

// NewNameMappings returns an empty aggregate.
func NewNameMappings() *NameMappings {
	return &NameMappings{
		types:   make(map[string]*CompositeType),
		aliases: make(map[string]*Alias),
	}
}

// Len returns the number of recorded composite types.
func (m *NameMappings) Len() int {
	return len(m.types)
}

// Types returns all composite types sorted by internal name.
func (m *NameMappings) Types() []*CompositeType {
	out := make([]*CompositeType, 0, len(m.types))
	for _, ct := range m.types {
		out = append(out, ct)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].InternalName < out[j].InternalName })

	return out
}

// AliasesFor returns the resolved alias names targeting the given
// internal name, in lexicographic order.
func (m *NameMappings) AliasesFor(internalName string) []string {
	var out []string

	for _, a := range m.aliases {
		if a.resolved && a.Target == internalName {
			out = append(out, a.Name)
		}
	}

	sort.Strings(out)

	return out
}

// Aliases returns every recorded alias, resolved or pending, sorted
// by alias name.
func (m *NameMappings) Aliases() []*Alias {
	out := make([]*Alias, 0, len(m.aliases))
	for _, a := range m.aliases {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// PendingAliases returns the names of aliases whose target has not
// been discovered, in lexicographic order.
func (m *NameMappings) PendingAliases() []string {
	var out []string

	for _, a := range m.aliases {
		if !a.resolved {
			out = append(out, a.Name)
		}
	}

	sort.Strings(out)

	return out
}

// CanonicalCName normalizes an original declaration name to its full C
// spelling: a struct named foo is "struct foo", a union named bar is
// "union bar". Names that already carry their kind prefix pass through
// unchanged.
func CanonicalCName(kind CompKind, originalName string) string {
	if originalName == "" {
		return ""
	}

	prefix := kind.String() + " "
	if strings.HasPrefix(originalName, prefix) {
		return originalName
	}

	return prefix + originalName
}
