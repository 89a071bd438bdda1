package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/blockfall/internal/board"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected tcell.Color
		wantErr  bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), false},
		{"00ff80", tcell.NewRGBColor(0, 255, 128), false},
		{"#FFF", tcell.ColorDefault, true},
		{"#GG0000", tcell.ColorDefault, true},
		{"", tcell.ColorDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLoadPalettes(t *testing.T) {
	defs, err := LoadPalettes()
	require.NoError(t, err)
	require.NotEmpty(t, defs)

	ids := make(map[string]bool)
	for _, d := range defs {
		assert.False(t, ids[d.ID], "duplicate palette %q", d.ID)
		ids[d.ID] = true
	}
	assert.True(t, ids[DefaultPaletteID], "default palette must exist")
}

func TestPaletteRegistry(t *testing.T) {
	registry, err := LoadPaletteRegistry()
	require.NoError(t, err)

	assert.Equal(t, []string{"classic", "mono", "pastel"}, registry.IDs())

	classic := registry.GetByID("classic")
	require.NotNil(t, classic)
	assert.Equal(t, '█', classic.Glyph)
	assert.Equal(t, tcell.NewRGBColor(0xE5, 0x39, 0x35), classic.Color(board.Red))
	assert.Equal(t, classic.Background, classic.Color(board.Empty))
	for _, cell := range board.Colors() {
		assert.NotEqual(t, classic.Background, classic.Color(cell), "cell %s", cell)
	}

	assert.Nil(t, registry.GetByID("missing"))

	p, ok := registry.Select("pastel")
	assert.True(t, ok)
	assert.Equal(t, "pastel", p.ID)

	p, ok = registry.Select("missing")
	assert.False(t, ok)
	assert.Equal(t, DefaultPaletteID, p.ID)
}

func TestResolveRejectsIncompletePalette(t *testing.T) {
	def := PaletteDef{
		ID:         "broken",
		Background: "#000000",
		Border:     "#FFFFFF",
		Cells:      map[string]string{"red": "#FF0000"},
	}
	_, err := def.Resolve()
	assert.ErrorContains(t, err, "missing color")

	def.Cells = nil
	def.Background = "nope"
	_, err = def.Resolve()
	assert.ErrorContains(t, err, "background")
}

func TestResolveDefaultGlyph(t *testing.T) {
	def := PaletteDef{ID: "plain", Background: "#000000", Border: "#FFFFFF", Cells: map[string]string{}}
	for _, cell := range board.Colors() {
		def.Cells[cell.String()] = "#123456"
	}

	p, err := def.Resolve()
	require.NoError(t, err)
	assert.Equal(t, '█', p.Glyph)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load[PalettesFile]("nope.json")
	assert.Error(t, err)
}
