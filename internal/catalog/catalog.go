// Package catalog holds the built-in template library: hand-authored example
// campaigns loaded once from embedded YAML into an immutable lookup table.
//
// The catalog is indexed by template id (primary) and category (secondary).
// Nothing mutates it after load; accessors hand out the shared Template
// values, which callers must treat as read-only.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"outflow/internal/logging"
	"outflow/internal/types"
)

//go:embed templates.yaml
var templatesYAML []byte

// Catalog is an immutable, load-time-built template library.
type Catalog struct {
	templates  []*types.Template
	byID       map[string]*types.Template
	byCategory map[types.Category][]*types.Template
}

// Load parses and validates the embedded template library. Every template
// must pass types.Template.Validate; a single corrupt entry fails the whole
// load so a bad library is caught at startup rather than mid-synthesis.
func Load() (*Catalog, error) {
	var doc struct {
		Templates []*types.Template `yaml:"templates"`
	}
	if err := yaml.Unmarshal(templatesYAML, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parsing embedded templates: %w", err)
	}
	if len(doc.Templates) == 0 {
		return nil, fmt.Errorf("catalog: embedded library is empty")
	}

	c := &Catalog{
		templates:  doc.Templates,
		byID:       make(map[string]*types.Template, len(doc.Templates)),
		byCategory: make(map[types.Category][]*types.Template),
	}
	for _, tpl := range doc.Templates {
		if err := tpl.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := c.byID[tpl.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate template id %s", tpl.ID)
		}
		c.byID[tpl.ID] = tpl
		c.byCategory[tpl.Category] = append(c.byCategory[tpl.Category], tpl)
	}

	logging.CatalogDebug("Loaded %d templates across %d categories", len(c.templates), len(c.byCategory))
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog built from the embedded library.
// The embedded data is validated by tests, so a load failure here is a build
// defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Get returns the template with the given id, or types.ErrTemplateNotFound.
func (c *Catalog) Get(id string) (*types.Template, error) {
	tpl, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrTemplateNotFound, id)
	}
	return tpl, nil
}

// ByCategory returns all templates in the given category, in library order.
func (c *Catalog) ByCategory(cat types.Category) []*types.Template {
	return c.byCategory[cat]
}

// All returns every template in library order.
func (c *Catalog) All() []*types.Template {
	return c.templates
}

// Len returns the number of templates in the library.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Categories returns the categories present in the library, sorted.
func (c *Catalog) Categories() []types.Category {
	cats := make([]types.Category, 0, len(c.byCategory))
	for cat := range c.byCategory {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// Search returns templates whose name, description, tags, or category
// contain the query, case-insensitively. An empty query matches nothing.
func (c *Catalog) Search(query string) []*types.Template {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var hits []*types.Template
	for _, tpl := range c.templates {
		if templateMatchesQuery(tpl, q) {
			hits = append(hits, tpl)
		}
	}
	return hits
}

func templateMatchesQuery(tpl *types.Template, q string) bool {
	if strings.Contains(strings.ToLower(tpl.Name), q) ||
		strings.Contains(strings.ToLower(tpl.Description), q) ||
		strings.Contains(strings.ToLower(string(tpl.Category)), q) {
		return true
	}
	for _, tag := range tpl.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
