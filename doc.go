// Package dialect provides component-style composition for event-stream
// HTML templates.
//
// A call site declares a component instance with attributes and body content.
// The engine resolves it against a reusable fragment definition, binds the
// component-namespace attributes as fragment-local values, and splices named
// slot content from the call site into placeholder positions inside the
// fragment. Composition nests, and slot content is lexically scoped: it is
// evaluated where it was written, not where it lands.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	thymeleaf-component-dialect/  Root package with shared collaborator interfaces
//	├── model/       Template events, balanced models, subtree extraction
//	├── component/   Kind registry, slots, attributes, scope chain, resolver
//	├── engine/      Document walker, render state, high-level Engine API
//	├── loader/      Filesystem template loader with a populate-once cache
//	├── htmlmodel/   HTML bytes <-> model.Model adapter (golang.org/x/net/html)
//	├── hcleval/     Attribute expression evaluator (HCL syntax, cty values)
//	└── errors/      Structured error types for render diagnostics
//
// # Quick Start
//
// Register a component kind, build an engine, render a document:
//
//	reg := component.NewRegistry()
//	reg.MustRegister(component.Kind{Prefix: "pl", Element: "card"})
//
//	ld := loader.New(os.DirFS("templates"), component.Names{Prefix: "pl"})
//	eng := engine.New(reg, ld, hcleval.New())
//
//	doc, _ := htmlmodel.Parse([]byte(`<pl:card pl:title="title" class="wide">Hello</pl:card>`))
//	out, err := eng.Render(ctx, doc, map[string]any{"title": "Greetings"})
//	fmt.Println(string(htmlmodel.Render(out)))
//
// The fragment template templates/pl/card/card.html declares its root with a
// pl:fragment signature and receives the call-site body through pl:slot
// placeholders:
//
//	<div pl:fragment="card(title)" class="card" pl:pass-attrs>
//	    <h1 pl:text="title"></h1>
//	    <pl:slot>fallback body</pl:slot>
//	</div>
//
// # Thread Safety
//
// Engine, Registry, and the loader cache are safe for concurrent use. A Model
// under expansion belongs to a single render and must not be shared.
package dialect
