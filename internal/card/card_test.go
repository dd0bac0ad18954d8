package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := New("agendas", "Card One\"\n   :some-field 1\n   :other 2")
	require.NoError(t, err)

	assert.Equal(t, "agendas", c.Category)
	assert.Equal(t, `Card One"`, c.RawName)
	assert.Equal(t, "Card One", c.Name)
	assert.Equal(t, "card-one", c.FileName)
	assert.Equal(t, []string{"   :some-field 1", "   :other 2"}, c.Abilities)
}

func TestNew_NameOnly(t *testing.T) {
	c, err := New("ice", "Wall of Static\"\n")
	require.NoError(t, err)

	assert.Equal(t, "wall-of-static", c.FileName)
	assert.Empty(t, c.Abilities)
}

func TestNew_EmptyFileName(t *testing.T) {
	for _, block := range []string{"", "...\"\n  :x 1", "\"\n"} {
		_, err := New("assets", block)
		require.Error(t, err, "block %q", block)
		assert.True(t, errors.Is(err, ErrEmptyFileName))
	}
}

func TestDefinitionName(t *testing.T) {
	c := &Card{Category: "agendas", FileName: "card-one"}

	assert.Equal(t, "(def card-definitions-agendas-card-one", c.DefinitionName(""))
	assert.Equal(t, "(def netrunner-agendas-card-one", c.DefinitionName("netrunner"))
}

func TestRender(t *testing.T) {
	c, err := New("agendas", "Card One\"\n:some-field 1")
	require.NoError(t, err)

	got := c.Render("(ns header text)\n", DefaultDefinitionPrefix)
	want := "(ns header text)\n" +
		"\n" +
		"(def card-definitions-agendas-card-one\n" +
		"  {\"Card One\n" +
		":some-field 1})\n"
	assert.Equal(t, want, got)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{""}, SplitLines("\n"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb"))
	assert.Equal(t, []string{"a", ""}, SplitLines("a\n\n"))
}
