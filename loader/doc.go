// Package loader resolves fragment references against an fs.FS.
//
// A template path maps to a file (the configured extension is appended when
// the path has none), the file is parsed into an event model, and the
// fragment whose signature name matches the selector is extracted. Results
// are cached per (path, selector): concurrent loads of the same key parse
// once and share the outcome, including a failure.
package loader
