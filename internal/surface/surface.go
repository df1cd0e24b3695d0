package surface

// Drawing capability used by the chart renderer
// A Surface is an addressable 2D target with a known on-screen size
// Targets are looked up by id through a Resolver (Registry for config-driven targets)

import (
	"image/color"
	"sort"
	"sync"
)

// Font selects a text face by pixel size and weight.
type Font struct {
	Size float64
	Bold bool
}

// Surface is the set of drawing calls the renderer needs.
// Stroke and Fill consume the current path, the Preserve variants keep it.
type Surface interface {
	// Bounds reports the current on-screen size of the target.
	Bounds() (width, height float64)
	// Resize assigns the pixel size explicitly and clears the surface.
	Resize(width, height int)
	Clear()

	SetColor(c color.Color)
	SetLineWidth(w float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawCircle(x, y, r float64)
	DrawRectangle(x, y, w, h float64)

	Stroke()
	StrokePreserve()
	Fill()
	FillPreserve()

	SetFont(f Font)
	// DrawStringAnchored draws s with its anchor at (x, y); ax 0.5 centers,
	// ax 1 right aligns, ay 0 puts the baseline on y.
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

// Resolver finds a surface by identifier.
type Resolver interface {
	Resolve(id string) (Surface, bool)
}

// Registry is a Resolver backed by a map of registered surfaces.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]Surface
}

func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]Surface)}
}

// Register binds id to s, replacing any previous binding.
func (r *Registry) Register(id string, s Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surfaces[id] = s
}

func (r *Registry) Resolve(id string) (Surface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.surfaces[id]
	return s, ok && s != nil
}

// IDs returns registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.surfaces))
	for id := range r.surfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
