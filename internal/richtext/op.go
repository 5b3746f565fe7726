package richtext

import (
	"fmt"
	"sort"
	"strings"
)

// OpKind groups operations by the engine entry point that runs them.
type OpKind int

const (
	OpStyle OpKind = iota + 1
	OpHeading
	OpList
)

// Op is a parsed formatting command.
type Op struct {
	Name  string
	Kind  OpKind
	Style Style
	Level int
	List  ListKind
}

var ops = map[string]Op{
	"bold":      {Kind: OpStyle, Style: StyleBold},
	"italic":    {Kind: OpStyle, Style: StyleItalic},
	"underline": {Kind: OpStyle, Style: StyleUnderline},
	"body":      {Kind: OpHeading, Level: 0},
	"h1":        {Kind: OpHeading, Level: 1},
	"h2":        {Kind: OpHeading, Level: 2},
	"h3":        {Kind: OpHeading, Level: 3},
	"bullet":    {Kind: OpList, List: ListBullet},
	"numbered":  {Kind: OpList, List: ListNumbered},
	"checklist": {Kind: OpList, List: ListCheckbox},
}

// OpNames returns the accepted operation names, sorted.
func OpNames() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseOp resolves an operation name such as "bold", "h2" or "checklist".
func ParseOp(name string) (Op, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	op, ok := ops[key]
	if !ok {
		return Op{}, fmt.Errorf("unknown operation %q (valid: %s)", name, strings.Join(OpNames(), ", "))
	}
	op.Name = key
	return op, nil
}

// Apply runs op over doc and sel.
func (e *Engine) Apply(doc Document, sel Selection, op Op) (Document, Selection) {
	switch op.Kind {
	case OpStyle:
		return e.ToggleStyle(doc, sel, op.Style)
	case OpHeading:
		return e.ApplyHeading(doc, sel, op.Level)
	case OpList:
		return e.ToggleList(doc, sel, op.List)
	}
	return doc, sel.Normalize(doc.Len())
}
