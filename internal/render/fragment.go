package render

import (
	"fmt"
	"strings"
)

// Fragment serializes rules as a flat TOML key/value list, one rule
// per line, without the enclosing [export.rename] section header. The
// fragment is meant to be merged into a larger export config, not to
// stand alone.
func Fragment(rules []Rule) string {
	var b strings.Builder
	b.Grow(len(rules) * 32)

	for _, r := range rules {
		fmt.Fprintf(&b, "%q = %q\n", r.InternalName, r.ExternalName)
	}

	return b.String()
}
