// Package render projects a reconciled NameMappings into rename rules
// and serializes them for the export toolchain.
//
// Two serializations are produced:
//   - a flat TOML key/value fragment, meant to be merged into the
//     [export.rename] section of an export config
//   - a generated Go source file embedding the rules as a read-only
//     map, for glue code that resolves names at the C boundary without
//     reading a file at startup
//
// All output is deterministic: rules are sorted by internal name and
// the alias tie-break is lexicographic, so repeated builds are
// byte-identical.
package render
