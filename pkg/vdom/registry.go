package vdom

import (
	"log/slog"
	"sync"
)

// Registry interns templates by ID so every render of the same call site
// shares one immutable Template. The reconciler relies on pointer
// identity to recognize "same template, new values" and skip the static
// skeleton entirely.
type Registry struct {
	mu        sync.RWMutex
	templates map[TemplateID]*Template
	logger    *slog.Logger
}

// NewRegistry creates a Registry. A nil logger falls back to
// slog.Default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		templates: make(map[TemplateID]*Template),
		logger:    logger,
	}
}

// Register interns a template and returns the canonical instance. The
// first registration wins; later calls with the same ID return the
// already-interned template regardless of the argument.
func (r *Registry) Register(t *Template) *Template {
	r.mu.RLock()
	existing, ok := r.templates[t.ID]
	r.mu.RUnlock()
	if ok {
		return existing
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.templates[t.ID]; ok {
		return existing
	}
	r.templates[t.ID] = t
	r.logger.Debug("template registered",
		"id", t.ID,
		"roots", len(t.Roots),
		"dynamic_nodes", len(t.NodePaths),
		"dynamic_attrs", len(t.AttrPaths))
	return t
}

// Lookup returns the interned template for an ID.
func (r *Registry) Lookup(id TemplateID) (*Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[id]
	return t, ok
}

// Len returns the number of interned templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// RenderID is the stable identity of a component render function, issued
// at registration time. Comparing RenderIDs answers "same render
// function, different props" versus "different render function entirely"
// without comparing code addresses, which are not stable across
// optimization boundaries.
type RenderID uint64

// RenderRegistry issues RenderIDs. Registering the same name twice
// returns the same ID, so components keep their identity across renders.
type RenderRegistry struct {
	mu     sync.Mutex
	next   RenderID
	byName map[string]RenderID
}

// NewRenderRegistry creates a RenderRegistry. IDs start at 1; zero means
// "unregistered".
func NewRenderRegistry() *RenderRegistry {
	return &RenderRegistry{next: 1, byName: make(map[string]RenderID)}
}

// Register returns the stable RenderID for a component name.
func (r *RenderRegistry) Register(name string) RenderID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byName[name]; ok {
		return id
	}
	id := r.next
	r.next++
	r.byName[name] = id
	return id
}
