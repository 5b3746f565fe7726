package richtext

// Base font size bounds, matching the settings screen.
const (
	DefaultBaseSize = 16.0
	MinBaseSize     = 12.0
	MaxBaseSize     = 24.0
)

// Engine applies formatting operations. Its only state is the configured body
// font size, which decides what "plain body text" means for headings and for
// the attributes given to inserted markers.
type Engine struct {
	BaseSize float64
}

// NewEngine returns an engine whose base size is clamped into
// [MinBaseSize, MaxBaseSize]. A zero size selects DefaultBaseSize.
func NewEngine(baseSize float64) *Engine {
	switch {
	case baseSize == 0:
		baseSize = DefaultBaseSize
	case baseSize < MinBaseSize:
		baseSize = MinBaseSize
	case baseSize > MaxBaseSize:
		baseSize = MaxBaseSize
	}
	return &Engine{BaseSize: baseSize}
}

// BodyAttrs returns the attributes of plain body text.
func (e *Engine) BodyAttrs() Attrs {
	return Attrs{Size: e.BaseSize}
}

func (e *Engine) effectiveSize(a Attrs) float64 {
	if a.Size == 0 {
		return e.BaseSize
	}
	return a.Size
}
