package main

import (
	"errors"
	"fmt"

	"github.com/mxyns/bindgen-bridge/internal/analyze"
	"github.com/mxyns/bindgen-bridge/internal/events"
	"github.com/mxyns/bindgen-bridge/internal/mapping"
)

// CheckCmd verifies a discovery log against the generated bindings
// package: every recorded internal name must still name a struct type
// there.
type CheckCmd struct {
	Events  string `long:"events" short:"e" required:"true" description:"discovery log written by the header importer (YAML)"`
	Package string `long:"package" short:"p" required:"true" description:"import path or pattern of the generated bindings package"`
}

// Execute implements flags.Commander.
func (c *CheckCmd) Execute(_ []string) error {
	eventLog, err := events.LoadFile(c.Events)
	if err != nil {
		return err
	}

	m := mapping.NewNameMappings()
	if err := events.Replay(eventLog, m); err != nil {
		return err
	}

	diags, err := analyze.VerifyBindings(c.Package, m)
	if err != nil {
		return err
	}

	reportDiagnostics(&diags)

	if diags.HasErrors() {
		return errors.New("mapping does not match the bindings package")
	}

	fmt.Printf("checked %d types against %s: ok\n", m.Len(), c.Package)

	return nil
}
