package events

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mxyns/bindgen-bridge/internal/mapping"
)

// Log is one import pass worth of discovery events.
type Log struct {
	Version string  `yaml:"version"`
	Events  []Entry `yaml:"events"`
}

// Entry is a single discovery event. Exactly one of the members is
// set.
type Entry struct {
	Composite *CompositeEvent `yaml:"composite,omitempty"`
	Alias     *AliasEvent     `yaml:"alias,omitempty"`
}

// CompositeEvent reports a struct or union the importer visited.
type CompositeEvent struct {
	// InternalName is the Go name assigned by the importer.
	InternalName string `yaml:"internal_name"`
	// Kind is "struct" or "union".
	Kind string `yaml:"kind"`
	// OriginalName is the C declaration name, absent for anonymous
	// types.
	OriginalName string `yaml:"original_name,omitempty"`
}

// AliasEvent reports a typedef the importer visited.
type AliasEvent struct {
	// Name is the typedef name.
	Name string `yaml:"name"`
	// Target is the internal name of the aliased composite type.
	Target string `yaml:"target"`
}

// LoadFile loads and parses a discovery log from the given path.
func LoadFile(path string) (*Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read discovery log %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Log and validates its shape.
func Parse(data []byte) (*Log, error) {
	var log Log

	if err := yaml.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("failed to parse discovery log: %w", err)
	}

	if log.Version == "" {
		log.Version = "1"
	}

	for i, e := range log.Events {
		if err := validateEntry(&e); err != nil {
			return nil, fmt.Errorf("discovery log event %d: %w", i, err)
		}
	}

	return &log, nil
}

func validateEntry(e *Entry) error {
	switch {
	case e.Composite != nil && e.Alias != nil:
		return fmt.Errorf("entry is both a composite and an alias event")
	case e.Composite != nil:
		if e.Composite.InternalName == "" {
			return fmt.Errorf("composite event has no internal_name")
		}

		if _, err := mapping.ParseCompKind(e.Composite.Kind); err != nil {
			return err
		}

		return nil
	case e.Alias != nil:
		if e.Alias.Name == "" {
			return fmt.Errorf("alias event has no name")
		}

		if e.Alias.Target == "" {
			return fmt.Errorf("alias event %q has no target", e.Alias.Name)
		}

		return nil
	default:
		return fmt.Errorf("entry is neither a composite nor an alias event")
	}
}

// Replay feeds every event of the log into the aggregate. The first
// conflicting fact aborts the replay and is returned wrapped with the
// event index; recovery is the caller's decision.
func Replay(log *Log, m *mapping.NameMappings) error {
	for i, e := range log.Events {
		ev, err := toMappingEvent(&e)
		if err != nil {
			return fmt.Errorf("discovery log event %d: %w", i, err)
		}

		if err := m.Apply(ev); err != nil {
			return fmt.Errorf("discovery log event %d: %w", i, err)
		}
	}

	return nil
}

func toMappingEvent(e *Entry) (mapping.Event, error) {
	if e.Composite != nil {
		kind, err := mapping.ParseCompKind(e.Composite.Kind)
		if err != nil {
			return mapping.Event{}, err
		}

		return mapping.Event{
			Kind:         mapping.EventComposite,
			InternalName: e.Composite.InternalName,
			CompKind:     kind,
			OriginalName: e.Composite.OriginalName,
		}, nil
	}

	if e.Alias != nil {
		return mapping.Event{
			Kind:      mapping.EventAlias,
			AliasName: e.Alias.Name,
			Target:    e.Alias.Target,
		}, nil
	}

	return mapping.Event{}, fmt.Errorf("entry is neither a composite nor an alias event")
}
