package mapping

// RecordAlias records a typedef alias referring to the composite type
// named by target. If the target is already known the alias is
// resolved immediately, otherwise it is stored pending and resolved
// retroactively if the target appears later in the pass.
//
// Recording the same alias with the same target again is a no-op;
// recording it with a different target returns a *ConflictError, since
// an alias name is globally unique within one pass.
func (m *NameMappings) RecordAlias(aliasName, target string) (*Alias, error) {
	if a, ok := m.aliases[aliasName]; ok {
		if a.Target != target {
			return nil, &ConflictError{
				Name:     aliasName,
				Existing: a.Target,
				Incoming: target,
			}
		}

		return a, nil
	}

	_, known := m.types[target]
	a := &Alias{
		Name:     aliasName,
		Target:   target,
		resolved: known,
	}
	m.aliases[aliasName] = a

	return a, nil
}

// resolvePending marks as resolved every pending alias whose deferred
// target matches the given internal name. Called whenever a composite
// type gains identity. Returns the number of aliases resolved.
func (m *NameMappings) resolvePending(internalName string) int {
	resolved := 0

	for _, a := range m.aliases {
		if !a.resolved && a.Target == internalName {
			a.resolved = true
			resolved++
		}
	}

	return resolved
}

// ForgetUnusedAliases removes every alias still pending and returns
// how many were dropped. Irreversible; intended as a cleanup step once
// the caller has decided that unresolved aliases carry no useful
// rename information.
func (m *NameMappings) ForgetUnusedAliases() int {
	dropped := 0

	for name, a := range m.aliases {
		if !a.resolved {
			delete(m.aliases, name)
			dropped++
		}
	}

	return dropped
}
