package nested

// Cell is a recyclable visual unit. Render returns exactly the lines to draw
// inside a frame of the given size; the host pads and clips the result.
type Cell interface {
	Render(size Size) string
}

// Reusable cells are reset before a pooled instance is handed out again.
type Reusable interface {
	PrepareForReuse()
}

// CellState is pushed to cells implementing Stateful before every render.
type CellState struct {
	Selected bool
	Focused  bool
}

type Stateful interface {
	SetState(CellState)
}

// Template builds a fresh cell for a reuse identifier.
type Template func() Cell

const (
	KindHeader = "header"
	KindFooter = "footer"
)

type registration struct {
	template   Template
	generation uint64
}

type supplementaryKey struct {
	kind string
	id   string
}

// Registry maps reuse identifiers to templates. Registering an identifier
// again replaces its template; cells built from the old template are never
// dequeued afterwards.
type Registry struct {
	items         map[string]registration
	supplementary map[supplementaryKey]registration
	generation    uint64
}

func NewRegistry() *Registry {
	return &Registry{
		items:         make(map[string]registration),
		supplementary: make(map[supplementaryKey]registration),
	}
}

func (r *Registry) RegisterItem(id string, t Template) {
	r.generation++
	r.items[id] = registration{template: t, generation: r.generation}
}

func (r *Registry) RegisterSupplementary(kind, id string, t Template) {
	r.generation++
	r.supplementary[supplementaryKey{kind: kind, id: id}] = registration{template: t, generation: r.generation}
}

func (r *Registry) ResolveItem(id string) (Template, bool) {
	reg, ok := r.items[id]
	if !ok || reg.template == nil {
		return nil, false
	}
	return reg.template, true
}

func (r *Registry) ResolveSupplementary(kind, id string) (Template, bool) {
	reg, ok := r.supplementary[supplementaryKey{kind: kind, id: id}]
	if !ok || reg.template == nil {
		return nil, false
	}
	return reg.template, true
}

func (r *Registry) itemRegistration(id string) (registration, bool) {
	reg, ok := r.items[id]
	return reg, ok && reg.template != nil
}

func (r *Registry) supplementaryRegistration(kind, id string) (registration, bool) {
	reg, ok := r.supplementary[supplementaryKey{kind: kind, id: id}]
	return reg, ok && reg.template != nil
}

// placeholderCell stands in for cells whose identifier has no template.
type placeholderCell struct{}

func (placeholderCell) Render(size Size) string { return "" }

// IsPlaceholder reports whether c is the blank cell used for unregistered
// identifiers.
func IsPlaceholder(c Cell) bool {
	_, ok := c.(placeholderCell)
	return ok
}
