package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
)

// Ensure RenderService implements the interface.
var _ driving.RenderService = (*RenderService)(nil)

const (
	svgHeader = `<svg width="100" height="100" viewBox="0 0 100 100" ` +
		`xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" ` +
		`xml:space="preserve" version="1.1"  baseProfile="full">`
	svgTail = `</svg>`
)

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

var defaultPalette = domain.Palette{
	"darkmagenta",
	"darkolivegreen",
	"darkorange",
	"darkorchid",
	"darkred",
	"darksalmon",
	"darkseagreen",
	"darkslateblue",
	"darkslategray",
	"darkslategrey",
	"darkturquoise",
	"darkviolet",
	"deeppink",
	"deepskyblue",
	"dimgray",
	"dimgrey",
	"dodgerblue",
	"firebrick",
	"floralwhite",
	"forestgreen",
	"fuchsia",
	"gainsboro",
	"ghostwhite",
	"gold",
	"goldenrod",
	"gray",
	"green",
	"greenyellow",
	"grey",
	"honeydew",
	"hotpink",
	"indianred",
	"indigo",
	"ivory",
	"khaki",
	"lavender",
	"lavenderblush",
	"lawngreen",
	"lemonchiffon",
	"lightblue",
	"lightcoral",
	"lightcyan",
	"lightgoldenrodyellow",
	"lightgray",
	"lightgreen",
	"lightgrey",
	"lightpink",
	"lightsalmon",
	"lightseagreen",
	"lightskyblue",
	"lightslategray",
	"lightslategrey",
	"lightsteelblue",
	"lightyellow",
	"lime",
	"limegreen",
	"linen",
	"magenta",
	"maroon",
	"mediumaquamarine",
	"mediumblue",
	"mediumorchid",
	"mediumpurple",
	"mediumseagreen",
	"mediumslateblue",
	"mediumspringgreen",
	"mediumturquoise",
	"mediumvioletred",
	"midnightblue",
	"mintcream",
	"mistyrose",
	"moccasin",
	"navajowhite",
	"navy",
}

// DefaultPalette returns a copy of the 74 named SVG colours used for strokes.
func DefaultPalette() domain.Palette {
	out := make(domain.Palette, len(defaultPalette))
	copy(out, defaultPalette)
	return out
}

// Renderer draws stroke recipes as numbered, colour-coded SVG diagrams.
// Output is byte-identical for identical input.
type Renderer struct {
	palette domain.Palette
}

// NewRenderer creates a renderer. A nil palette uses DefaultPalette.
func NewRenderer(palette domain.Palette) *Renderer {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Renderer{palette: palette}
}

// Render returns the complete SVG document for recipe.
// Stroke i is drawn in palette[i] and labelled i+1 at its start point.
func (r *Renderer) Render(recipe domain.StrokeRecipe) (string, error) {
	if n := len(recipe.Strokes); n > len(r.palette) {
		return "", fmt.Errorf("%w: %d strokes, %d colours", domain.ErrPaletteExhausted, n, len(r.palette))
	}

	var b strings.Builder
	b.WriteString(svgHeader)
	for i, stroke := range recipe.Strokes {
		x, y, err := stroke.Start()
		if err != nil {
			return "", fmt.Errorf("stroke %d: %w", i+1, err)
		}
		color := r.palette[i]
		xs := formatCoord(x)
		ys := formatCoord(y)
		label := strconv.Itoa(i + 1)

		b.WriteString("\n<path style=\"fill:none;stroke:")
		b.WriteString(color)
		b.WriteString(";stroke-width:2\" d=\"")
		b.WriteString(attrEscaper.Replace(stroke.D))
		b.WriteString("\"/>")

		writeLabel(&b, xs, ys, "stroke:black", label)
		writeLabel(&b, xs, ys, "fill:"+color, label)
	}
	b.WriteString("\n")
	b.WriteString(svgTail)
	return b.String(), nil
}

func writeLabel(b *strings.Builder, x, y, style, label string) {
	fmt.Fprintf(b, "\n<text x=\"%s\" y=\"%s\" style=\"%s\" font-size=\"5\">%s</text>", x, y, style, label)
}

// formatCoord prints the shortest decimal that round-trips.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderService renders diagrams for characters in the catalog.
type RenderService struct {
	catalog  driving.CatalogService
	renderer *Renderer
}

// NewRenderService creates a new render service.
func NewRenderService(catalog driving.CatalogService, renderer *Renderer) *RenderService {
	if renderer == nil {
		renderer = NewRenderer(nil)
	}
	return &RenderService{
		catalog:  catalog,
		renderer: renderer,
	}
}

// Render draws one recipe as a complete SVG document.
func (s *RenderService) Render(recipe domain.StrokeRecipe) (string, error) {
	return s.renderer.Render(recipe)
}

// RenderLiteral draws the diagram for a literal.
// ok is false when the literal has no stroke data.
func (s *RenderService) RenderLiteral(ctx context.Context, literal rune) (string, bool, error) {
	db, err := s.catalog.Database(ctx)
	if err != nil {
		return "", false, err
	}
	recipe, ok := db.Strokes(literal)
	if !ok {
		return "", false, nil
	}
	svg, err := s.renderer.Render(recipe)
	if err != nil {
		return "", false, fmt.Errorf("render %c: %w", literal, err)
	}
	return svg, true, nil
}
