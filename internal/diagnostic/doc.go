// Package diagnostic provides structured warnings, errors, and infos
// for the rename-rule pipeline.
//
// Key capabilities:
//   - Unnamed-type-omitted warnings from rendering
//   - Unresolved-alias reports at end of a pass
//   - Bindings-verification findings from the check command
package diagnostic
