// Package main provides the CLI entrypoint for bindgen-bridge.
//
// bindgen-bridge is a build-time tool that:
//   - Replays the discovery log emitted by the C header importer
//   - Reconciles type names, original C names, and typedef aliases
//   - Renders rename rules into an export config (from a TOML
//     template) and a static Go lookup table
//   - Checks the mapping against the actual generated bindings package
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
)

const version = "0.2.0"

// Options is the top-level command surface.
type Options struct {
	Version bool `long:"version" short:"V" description:"print version and exit"`

	Render RenderCmd `command:"render" description:"generate export config and static lookup table from a discovery log"`
	Check  CheckCmd  `command:"check" description:"verify a discovery log against the generated bindings package"`
}

func main() {
	options := &Options{}
	parser := flags.NewParser(options, flags.Default)
	parser.SubcommandsOptional = true

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				return
			}

			// go-flags already printed the usage error.
			os.Exit(1)
		}

		log.Fatal(err)
	}

	if options.Version {
		fmt.Printf("bindgen-bridge: version: %v\n", version)
		return
	}

	if parser.Active == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}
}
