// Package analyze verifies a mapping against the actual generated
// bindings package.
//
// It loads the package with golang.org/x/tools/go/packages and checks
// that every internal name in the mapping resolves to a struct type
// there, catching a discovery log that drifted from the bindings it
// was recorded against.
package analyze
