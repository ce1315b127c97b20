package driving

import (
	"context"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

// RenderService draws stroke diagrams.
type RenderService interface {
	// Render draws one recipe as a complete SVG document.
	Render(recipe domain.StrokeRecipe) (string, error)

	// RenderLiteral draws the diagram for a literal.
	// ok is false when the literal has no stroke data.
	RenderLiteral(ctx context.Context, literal rune) (svg string, ok bool, err error)
}
