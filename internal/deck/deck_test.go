package deck

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const agendasSource = `(ns header text)

   "Card One"
   :some-field 1

   "Card Two: Special!"
   :some-field 2
`

func TestParse(t *testing.T) {
	d := Parse("agendas", agendasSource, nil)

	assert.Equal(t, "agendas", d.Category)
	assert.Equal(t, "(ns header text)\n", d.Header)
	require.Len(t, d.Blocks, 2)
	assert.Equal(t, "Card One\"\n   :some-field 1", d.Blocks[0])
	assert.Equal(t, "Card Two: Special!\"\n   :some-field 2\n", d.Blocks[1])
}

func TestParse_UnindentedNames(t *testing.T) {
	d := Parse("events", "(ns x)\n\n\"A\"\n :a 1\n\n \"B\"\n :b 2", nil)

	require.Len(t, d.Blocks, 2)
	assert.Equal(t, "A\"\n :a 1", d.Blocks[0])
	assert.Equal(t, "B\"\n :b 2", d.Blocks[1])
}

func TestParse_NestedStringStaysInCard(t *testing.T) {
	src := "(ns h)\n\n   \"Card A\"\n   {:msg\n\n      \"nested string\"\n    :x 1}\n\n   \"Card B\"\n   {}\n"

	d := Parse("ice", src, nil)

	require.Len(t, d.Blocks, 2)
	assert.Equal(t, "Card A\"\n   {:msg\n\n      \"nested string\"\n    :x 1}", d.Blocks[0])
	assert.Equal(t, "Card B\"\n   {}\n", d.Blocks[1])
}

func TestParse_NoDelimiter(t *testing.T) {
	d := Parse("ice", "(ns only a header)\n(def x 1)\n", nil)

	assert.Equal(t, "(ns only a header)\n(def x 1)\n\n", d.Header)
	assert.Empty(t, d.Blocks)
}

func TestParse_CRLF(t *testing.T) {
	d := Parse("hardware", "(ns h)\r\n\r\n   \"Box\"\r\n   :cost 1\r\n", nil)

	assert.Equal(t, "(ns h)\n", d.Header)
	require.Len(t, d.Blocks, 1)
	assert.Equal(t, "Box\"\n   :cost 1\n", d.Blocks[0])
}

func TestParse_CustomDelimiter(t *testing.T) {
	d := Parse("assets", "head;;one;;two", regexp.MustCompile(";;"))

	assert.Equal(t, "head\n", d.Header)
	assert.Equal(t, []string{"one", "two"}, d.Blocks)
}

func TestLoadDeck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agendas.clj"), []byte(agendasSource), 0644))

	d, err := LoadDeck(dir, "agendas", "", nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "agendas.clj"), d.Path)
	assert.Len(t, d.Blocks, 2)
}

func TestLoadDeck_Missing(t *testing.T) {
	_, err := LoadDeck(t.TempDir(), "assets", ".clj", nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputMissing))
	assert.Contains(t, err.Error(), "assets.clj")
}

func TestLoadDeck_InvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ice.clj"), []byte{0xff, 0xfe, 'x'}, 0644))

	_, err := LoadDeck(dir, "ice", ".clj", nil)

	assert.True(t, errors.Is(err, ErrInvalidEncoding))
}
