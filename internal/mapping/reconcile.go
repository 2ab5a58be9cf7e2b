package mapping

import "fmt"

// EventKind discriminates discovery events.
type EventKind int

const (
	// EventComposite reports a struct or union visited by the importer.
	EventComposite EventKind = iota
	// EventAlias reports a typedef visited by the importer.
	EventAlias
)

// Event is one discovery fact emitted by the header importer. The
// importer has no ordering obligation: events of one pass may arrive
// in any order and may repeat.
type Event struct {
	Kind EventKind

	// Composite fields.
	InternalName string
	CompKind     CompKind
	// OriginalName is the raw declaration name, empty for anonymous
	// types. It is canonicalized with CanonicalCName before storage.
	OriginalName string

	// Alias fields.
	AliasName string
	Target    string
}

// Apply reconciles one discovery event into the aggregate.
func (m *NameMappings) Apply(ev Event) error {
	switch ev.Kind {
	case EventComposite:
		return m.CompositeFound(ev.InternalName, ev.CompKind, ev.OriginalName)
	case EventAlias:
		return m.AliasFound(ev.AliasName, ev.Target)
	default:
		return fmt.Errorf("unknown event kind %d", ev.Kind)
	}
}

// CompositeFound reconciles a composite-type-discovered event: the
// type is recorded (idempotently), its original name is set if the
// importer saw one, and any aliases pending on this internal name are
// resolved retroactively.
//
// originalName may be empty for anonymous types. A conflicting
// original name surfaces as *ConflictError.
func (m *NameMappings) CompositeFound(internalName string, kind CompKind, originalName string) error {
	m.RecordType(internalName, kind)

	if originalName != "" {
		if err := m.SetOriginalName(internalName, CanonicalCName(kind, originalName)); err != nil {
			return err
		}
	}

	m.resolvePending(internalName)

	return nil
}

// AliasFound reconciles an alias-discovered event. If the target
// composite type is already known the alias resolves immediately,
// otherwise it is held pending.
func (m *NameMappings) AliasFound(aliasName, target string) error {
	_, err := m.RecordAlias(aliasName, target)
	return err
}
