package analyze

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/mxyns/bindgen-bridge/internal/diagnostic"
	"github.com/mxyns/bindgen-bridge/internal/mapping"
)

// LoadMode specifies what information to load from the bindings
// package.
const LoadMode = packages.NeedName | packages.NeedTypes

// VerifyBindings loads the package matching pattern and checks every
// composite type of the mapping against it. Findings are returned as
// diagnostics: a missing type name is an error (the discovery log no
// longer matches the bindings), a name bound to something other than a
// struct is an error too. cgo emits both C structs and C unions as Go
// struct types, so struct is the only accepted shape.
func VerifyBindings(pattern string, m *mapping.NameMappings) (diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return diags, fmt.Errorf("failed to load bindings package %s: %w", pattern, err)
	}

	if len(pkgs) != 1 {
		return diags, fmt.Errorf("pattern %s matched %d packages, want exactly one", pattern, len(pkgs))
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return diags, fmt.Errorf("bindings package %s: %v", pattern, pkg.Errors[0])
	}

	scope := pkg.Types.Scope()
	for _, ct := range m.Types() {
		obj := scope.Lookup(ct.InternalName)
		if obj == nil {
			diags.AddError("missing_binding",
				fmt.Sprintf("type not found in package %s", pkg.PkgPath),
				ct.InternalName, "")

			continue
		}

		tn, ok := obj.(*types.TypeName)
		if !ok {
			diags.AddError("not_a_type",
				fmt.Sprintf("%s names a %T, not a type", ct.InternalName, obj),
				ct.InternalName, "")

			continue
		}

		if _, ok := tn.Type().Underlying().(*types.Struct); !ok {
			diags.AddError("not_a_struct",
				fmt.Sprintf("underlying type is %s, want struct", tn.Type().Underlying()),
				ct.InternalName, "")
		}
	}

	return diags, nil
}
