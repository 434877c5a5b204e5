// Package hcleval evaluates attribute expressions with HCL expression
// syntax. Variables from the render scope are exposed by name, so
// "user.name", "count + 1" and "active ? \"on\" : \"off\"" all work the way
// they do in an HCL file. Evaluation failures are reported as errors and
// the caller decides what a failed expression means.
package hcleval
