// Package template turns an export config template into the final
// config consumed by the export toolchain.
//
// The template is an ordinary TOML document maintained by hand; this
// package merges the generated rename rules into its [export.rename]
// table (overwriting colliding keys, preserving everything else) and
// prepends a banner marking the result as machine-generated from the
// template.
package template
