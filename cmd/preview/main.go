package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/HellButcher/thymeleaf-component-dialect/component"
	"github.com/HellButcher/thymeleaf-component-dialect/engine"
	"github.com/HellButcher/thymeleaf-component-dialect/hcleval"
	"github.com/HellButcher/thymeleaf-component-dialect/htmlmodel"
	"github.com/HellButcher/thymeleaf-component-dialect/loader"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

func main() {
	var (
		dir         = flag.String("dir", ".", "Template root directory")
		templ       = flag.String("template", "", "Template file to render")
		prefix      = flag.String("prefix", "pl", "Dialect prefix")
		components  = flag.String("components", "", "Component registrations (elem,elem2=path::fragment,...)")
		vars        = flag.String("vars", "", "Render variables (KEY=VAL,KEY2=VAL2)")
		maxDepth    = flag.Int("depth", engine.DefaultMaxDepth, "Expansion depth guard")
		list        = flag.Bool("list", false, "List fragments in the template and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*dir, *prefix, *components, *maxDepth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *templ == "" {
		fmt.Fprintln(os.Stderr, "Usage: preview -template <file.html> [-dir root] [-components elem,...] [-vars K=V,...]")
		fmt.Fprintln(os.Stderr, "       preview -template <file.html> -list")
		fmt.Fprintln(os.Stderr, "       preview -components elem,... -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*dir, *templ, *prefix, *components, *vars, *maxDepth, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dir, templ, prefix, componentsStr, varsStr string, maxDepth int, listOnly bool) error {
	ctx := context.Background()

	data, err := os.ReadFile(templ)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	doc, err := htmlmodel.Parse(data)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	if listOnly {
		return listFragments(doc, prefix, templ)
	}

	registry, err := buildRegistry(prefix, componentsStr)
	if err != nil {
		return err
	}

	eng := engine.New(
		registry,
		loader.New(os.DirFS(dir), component.Names{Prefix: prefix}),
		hcleval.New(),
		engine.WithMaxDepth(maxDepth),
	)

	expanded, err := eng.Render(ctx, doc, parseVars(varsStr))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	_, err = os.Stdout.Write(htmlmodel.Render(expanded))
	return err
}

// listFragments prints every fragment the template file declares, with its
// signature.
func listFragments(doc model.Model, prefix, templ string) error {
	names := component.Names{Prefix: prefix}
	fmt.Printf("Template: %s\n", templ)
	fmt.Printf("Events: %d\n", len(doc))

	fmt.Printf("\nFragments:\n")
	found := 0
	for _, ev := range doc {
		open, ok := ev.(model.OpenTag)
		if !ok || !open.Attrs.Has(names.FragmentAttr()) {
			continue
		}
		found++
		sig, err := component.ParseSignature(open.Attrs.Value(names.FragmentAttr()))
		if err != nil {
			fmt.Printf("  <%s> (invalid signature: %v)\n", open.Name, err)
			continue
		}
		name := sig.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("  %s(%s) on <%s>\n", name, strings.Join(sig.Params, ", "), open.Name)
	}
	if found == 0 {
		fmt.Println("  (none)")
	}
	return nil
}

// buildRegistry registers each entry of the -components flag. A bare element
// name uses the conventional template path; "elem=path::fragment" overrides
// it.
func buildRegistry(prefix, componentsStr string) (*component.Registry, error) {
	registry := component.NewRegistry()
	if componentsStr == "" {
		return registry, nil
	}
	for _, entry := range strings.Split(componentsStr, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		element, path, _ := strings.Cut(entry, "=")
		kind := component.Kind{Prefix: prefix, Element: element, TemplatePath: path}
		if err := registry.Register(kind); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func parseVars(varsStr string) map[string]any {
	if varsStr == "" {
		return nil
	}
	vars := make(map[string]any)
	for _, kv := range strings.Split(varsStr, ",") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			vars[parts[0]] = parts[1]
		}
	}
	return vars
}
