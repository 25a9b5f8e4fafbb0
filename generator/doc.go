// Package generator provides the building blocks for project generation:
// filesystem operations with validate-then-execute semantics and a cached
// text/template renderer.
//
// Generators build a slice of Operations describing everything they intend
// to do, then hand the batch to Execute. Execute validates every operation
// before executing any of them, so argument problems surface before the
// destination tree is touched.
//
//	ops := []generator.Operation{
//		&generator.CopyTreeOp{Source: templates, Root: "templates/MVC", Dest: dest},
//		&generator.WriteFileOp{Path: filepath.Join(dest, "project.yml"), Content: manifest, Mode: 0644},
//	}
//	err := generator.Execute(ctx, ops, generator.ExecuteOptions{})
//
// The Renderer fills templates through named keys on a typed data value.
// A template that references a missing key fails the render, which is the
// generation-time replacement for positional-substitution count mismatches.
package generator
