package richtext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyledRoundTrip(t *testing.T) {
	doc := FromRuns([]Run{
		{Text: "Heading\n", Attrs: Attrs{Bold: true, Size: 24}},
		{Text: "☐ ", Attrs: Attrs{Checkbox: true, Size: 16}},
		{Text: "körper ", Attrs: Attrs{Italic: true}},
		{Text: "link", Attrs: Attrs{Underline: true, Link: "https://example.com"}},
	})

	data, err := MarshalStyled(doc)
	require.NoError(t, err)

	got, err := UnmarshalStyled(data)
	require.NoError(t, err)
	assert.True(t, got.Equal(doc), got.debugString())
	assert.Equal(t, doc.Runs(), got.Runs())
}

func TestStyledEmptyDocument(t *testing.T) {
	data, err := MarshalStyled(Document{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1,"runs":[]}`, string(data))

	got, err := UnmarshalStyled(data)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestUnmarshalStyled_Errors(t *testing.T) {
	for _, in := range []string{"", "not json", `{"v":9,"runs":[]}`} {
		_, err := UnmarshalStyled([]byte(in))
		assert.True(t, errors.Is(err, ErrStyledFormat), "input %q: %v", in, err)
	}
}
