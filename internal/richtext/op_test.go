package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	op, err := ParseOp(" H2 ")
	require.NoError(t, err)
	assert.Equal(t, Op{Name: "h2", Kind: OpHeading, Level: 2}, op)

	op, err = ParseOp("checklist")
	require.NoError(t, err)
	assert.Equal(t, OpList, op.Kind)
	assert.Equal(t, ListCheckbox, op.List)

	_, err = ParseOp("strike")
	assert.ErrorContains(t, err, "unknown operation")
}

func TestApplyDispatch(t *testing.T) {
	e := NewEngine(16)
	doc := New("one\ntwo", Attrs{})
	sel := Span(0, doc.Len())

	for _, name := range OpNames() {
		op, err := ParseOp(name)
		require.NoError(t, err)

		out, _ := e.Apply(doc, sel, op)
		switch op.Kind {
		case OpList:
			assert.NotEqual(t, doc.String(), out.String(), name)
		default:
			assert.Equal(t, doc.String(), out.String(), name)
			assert.False(t, out.Equal(doc), name)
		}
	}
}

func TestNewEngineClampsBaseSize(t *testing.T) {
	assert.Equal(t, DefaultBaseSize, NewEngine(0).BaseSize)
	assert.Equal(t, MinBaseSize, NewEngine(3).BaseSize)
	assert.Equal(t, MaxBaseSize, NewEngine(90).BaseSize)
	assert.Equal(t, 15.0, NewEngine(15).BaseSize)
}
