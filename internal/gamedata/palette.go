package gamedata

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/blockfall/internal/board"
)

// DefaultPaletteID is used when the configured palette does not exist.
const DefaultPaletteID = "classic"

// PaletteDef defines a color scheme loaded from JSON. Cell colors are keyed
// by board.Cell names.
type PaletteDef struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Glyph      string            `json:"glyph"`
	Background string            `json:"background"`
	Border     string            `json:"border"`
	Cells      map[string]string `json:"cells"`
}

// PalettesFile represents the structure of palettes.json.
type PalettesFile struct {
	Palettes []PaletteDef `json:"palettes"`
}

// Palette is a resolved palette ready for drawing.
type Palette struct {
	ID         string
	Name       string
	Glyph      rune
	Background tcell.Color
	Border     tcell.Color
	cells      map[board.Cell]tcell.Color
}

// Color returns the draw color for a cell. Empty cells use the background.
func (p *Palette) Color(c board.Cell) tcell.Color {
	if color, ok := p.cells[c]; ok {
		return color
	}
	return p.Background
}

// Resolve parses every color in the definition. Each non-empty board cell
// must have an entry.
func (d *PaletteDef) Resolve() (*Palette, error) {
	bg, err := ParseHexColor(d.Background)
	if err != nil {
		return nil, fmt.Errorf("palette %s background: %w", d.ID, err)
	}
	border, err := ParseHexColor(d.Border)
	if err != nil {
		return nil, fmt.Errorf("palette %s border: %w", d.ID, err)
	}

	glyph := '█'
	for _, r := range d.Glyph {
		glyph = r
		break
	}

	p := &Palette{
		ID:         d.ID,
		Name:       d.Name,
		Glyph:      glyph,
		Background: bg,
		Border:     border,
		cells:      make(map[board.Cell]tcell.Color, len(d.Cells)),
	}
	for _, cell := range board.Colors() {
		hex, ok := d.Cells[cell.String()]
		if !ok {
			return nil, fmt.Errorf("palette %s: missing color for %s", d.ID, cell)
		}
		color, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s %s: %w", d.ID, cell, err)
		}
		p.cells[cell] = color
	}
	return p, nil
}

// LoadPalettes loads palette definitions from the embedded palettes.json file.
func LoadPalettes() ([]PaletteDef, error) {
	file, err := Load[PalettesFile]("palettes.json")
	if err != nil {
		return nil, err
	}
	return file.Palettes, nil
}

// PaletteRegistry holds resolved palettes by ID.
type PaletteRegistry struct {
	palettes map[string]*Palette
}

// NewPaletteRegistry resolves the given definitions into a registry.
func NewPaletteRegistry(defs []PaletteDef) (*PaletteRegistry, error) {
	r := &PaletteRegistry{palettes: make(map[string]*Palette, len(defs))}
	for i := range defs {
		p, err := defs[i].Resolve()
		if err != nil {
			return nil, err
		}
		r.palettes[p.ID] = p
	}
	return r, nil
}

// LoadPaletteRegistry loads and resolves the embedded palettes.
func LoadPaletteRegistry() (*PaletteRegistry, error) {
	defs, err := LoadPalettes()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no palettes loaded from palettes.json")
	}
	return NewPaletteRegistry(defs)
}

// GetByID returns the palette with the given ID, or nil if not found.
func (r *PaletteRegistry) GetByID(id string) *Palette {
	return r.palettes[id]
}

// Select returns the palette with the given ID, falling back to the
// default palette. ok reports whether the requested ID was found.
func (r *PaletteRegistry) Select(id string) (p *Palette, ok bool) {
	if found := r.palettes[id]; found != nil {
		return found, true
	}
	return r.palettes[DefaultPaletteID], false
}

// IDs returns the known palette IDs in sorted order.
func (r *PaletteRegistry) IDs() []string {
	ids := make([]string, 0, len(r.palettes))
	for id := range r.palettes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
