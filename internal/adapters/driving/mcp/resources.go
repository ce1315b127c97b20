package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for kanji resources.
	uriScheme = "kanji://"

	charactersPrefix = uriScheme + "characters/"
	strokesPrefix    = uriScheme + "strokes/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: charactersPrefix + "{literal}",
		Name:        "character",
		Description: "Dictionary record for one character",
		MIMEType:    "application/json",
	}, s.handleCharacterResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: strokesPrefix + "{literal}",
		Name:        "strokes",
		Description: "Stroke order diagram for one character",
		MIMEType:    "image/svg+xml",
	}, s.handleStrokesResource)

	if s.ports.Study != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "study",
			Name:        "study",
			Description: "Characters on the study list with their confidence",
			MIMEType:    "application/json",
		}, s.handleStudyResource)
	}
}

func (s *Server) handleCharacterResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	literal, ok := extractLiteral(req.Params.URI, charactersPrefix)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	result, err := s.ports.Search.Lookup(ctx, literal)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up %c: %w", literal, err)
	}

	data, err := json.MarshalIndent(characterOutput(result), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling record: %w", err)
	}
	return textResult(req.Params.URI, "application/json", string(data)), nil
}

func (s *Server) handleStrokesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	literal, ok := extractLiteral(req.Params.URI, strokesPrefix)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	svg, found, err := s.ports.Render.RenderLiteral(ctx, literal)
	if err != nil {
		return nil, fmt.Errorf("rendering %c: %w", literal, err)
	}
	if !found {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return textResult(req.Params.URI, "image/svg+xml", svg), nil
}

func (s *Server) handleStudyResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	items, err := s.ports.Study.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing study entries: %w", err)
	}

	type studyInfo struct {
		Literal    string   `json:"literal"`
		Confidence int      `json:"confidence"`
		AddedAt    string   `json:"added_at"`
		Meanings   []string `json:"meanings"`
	}

	infos := make([]studyInfo, len(items))
	for i := range items {
		infos[i] = studyInfo{
			Literal:    string(items[i].Entry.Literal),
			Confidence: items[i].Entry.Confidence,
			AddedAt:    items[i].Entry.AddedAt.UTC().Format("2006-01-02T15:04:05Z"),
			Meanings:   items[i].Record.Meanings,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling study list: %w", err)
	}
	return textResult(req.Params.URI, "application/json", string(data)), nil
}

func textResult(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}

// extractLiteral pulls the character out of a URI like kanji://characters/{literal}.
// The segment may be percent-encoded.
func extractLiteral(uri, prefix string) (rune, bool) {
	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	segment, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return 0, false
	}
	r, err := singleRune(segment)
	if err != nil {
		return 0, false
	}
	return r, true
}
