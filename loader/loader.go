package loader

import (
	"context"
	"io/fs"
	"path"
	"sync"

	"go.uber.org/zap"

	dialect "github.com/HellButcher/thymeleaf-component-dialect"
	"github.com/HellButcher/thymeleaf-component-dialect/component"
	"github.com/HellButcher/thymeleaf-component-dialect/errors"
	"github.com/HellButcher/thymeleaf-component-dialect/htmlmodel"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

// DefaultExtension is appended to template paths that carry no extension.
const DefaultExtension = ".html"

type cacheKey struct {
	path     string
	fragment string
}

type cacheEntry struct {
	once sync.Once
	frag *component.Fragment
	err  error
}

// FSLoader loads fragment definitions from an fs.FS. It is safe for
// concurrent use: each (path, selector) pair is read and parsed at most once,
// and the outcome, failure included, is shared by all callers.
type FSLoader struct {
	fsys  fs.FS
	names component.Names
	ext   string

	mu    sync.Mutex
	cache map[cacheKey]*cacheEntry
}

// Option configures an FSLoader.
type Option func(*FSLoader)

// WithExtension overrides the extension appended to extensionless paths.
func WithExtension(ext string) Option {
	return func(l *FSLoader) {
		if ext != "" {
			l.ext = ext
		}
	}
}

// New creates a loader over fsys. names carries the dialect prefix the
// fragment markers are written in.
func New(fsys fs.FS, names component.Names, opts ...Option) *FSLoader {
	l := &FSLoader{
		fsys:  fsys,
		names: names,
		ext:   DefaultExtension,
		cache: make(map[cacheKey]*cacheEntry),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves a template path and fragment selector to a cached fragment
// definition.
func (l *FSLoader) Load(_ context.Context, templatePath, fragment string) (*component.Fragment, error) {
	key := cacheKey{path: templatePath, fragment: fragment}

	l.mu.Lock()
	entry, hit := l.cache[key]
	if !hit {
		entry = &cacheEntry{}
		l.cache[key] = entry
	}
	l.mu.Unlock()

	entry.once.Do(func() {
		entry.frag, entry.err = l.load(templatePath, fragment)
		Logger().Debug("loaded template",
			zap.String("path", templatePath),
			zap.String("fragment", fragment),
			zap.Bool("ok", entry.err == nil))
	})
	if !hit {
		// First caller populated; later callers reuse the entry.
		return entry.frag, entry.err
	}

	Logger().Debug("template cache hit",
		zap.String("path", templatePath),
		zap.String("fragment", fragment))
	return entry.frag, entry.err
}

func (l *FSLoader) load(templatePath, fragment string) (*component.Fragment, error) {
	name := templatePath
	if path.Ext(name) == "" {
		name += l.ext
	}

	src, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, errors.TemplateNotFound(templatePath, fragment, err)
	}

	doc, err := htmlmodel.Parse(src)
	if err != nil {
		return nil, errors.Load(name, err)
	}

	root, err := l.selectFragment(doc, templatePath, fragment)
	if err != nil {
		return nil, err
	}

	subtree, err := model.BalancedRange(doc, root)
	if err != nil {
		return nil, err
	}
	ref := dialect.TemplateRef{Path: templatePath, Fragment: fragment}
	return component.NewFragment(ref, subtree, l.names)
}

// selectFragment finds the element whose signature marker names the selector.
// An empty selector accepts the first marker in the file.
func (l *FSLoader) selectFragment(doc model.Model, templatePath, fragment string) (int, error) {
	marker := l.names.FragmentAttr()
	for i, ev := range doc {
		open, ok := ev.(model.OpenTag)
		if !ok || !open.Attrs.Has(marker) {
			continue
		}
		sig, err := component.ParseSignature(open.Attrs.Value(marker))
		if err != nil {
			sigErr := err.(*errors.Error)
			sigErr.Template = templatePath
			return 0, sigErr
		}
		if fragment == "" || sig.Name == fragment {
			return i, nil
		}
	}
	return 0, errors.TemplateNotFound(templatePath, fragment, nil)
}
