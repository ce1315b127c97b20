package services

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/kanji-cli/internal/core/domain"
	"github.com/custodia-labs/kanji-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kanji-cli/internal/logger"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides actions on search results.
type ResultActionService struct {
	renderer *Renderer
	settings driving.SettingsService

	// opener launches the default application for a path.
	opener func(path string) error
	// copier writes text to the system clipboard.
	copier func(text string) error
}

// NewResultActionService creates a new result action service.
// The settings parameter is optional (can be nil); the default output path is used.
func NewResultActionService(renderer *Renderer, settings driving.SettingsService) *ResultActionService {
	if renderer == nil {
		renderer = NewRenderer(nil)
	}
	return &ResultActionService{
		renderer: renderer,
		settings: settings,
		opener:   openPath,
		copier:   writeClipboard,
	}
}

// CopyLiteral copies the result's character to the system clipboard.
func (s *ResultActionService) CopyLiteral(_ context.Context, result *domain.SearchResult) error {
	if result == nil {
		return fmt.Errorf("result is nil")
	}
	return s.copier(string(result.Record.Literal))
}

// WriteDiagram renders the result's strokes to path.
func (s *ResultActionService) WriteDiagram(_ context.Context, result *domain.SearchResult, path string) error {
	if result == nil {
		return fmt.Errorf("result is nil")
	}
	if result.Strokes == nil {
		return fmt.Errorf("%w: %c", domain.ErrNoStrokes, result.Record.Literal)
	}
	svg, err := s.renderer.Render(*result.Strokes)
	if err != nil {
		return fmt.Errorf("render %c: %w", result.Record.Literal, err)
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write diagram: %w", err)
	}
	logger.Debug("Wrote %d bytes to %s", len(svg), path)
	return nil
}

// OpenDiagram writes the diagram to the configured output and opens it
// in the default application.
func (s *ResultActionService) OpenDiagram(ctx context.Context, result *domain.SearchResult) (string, error) {
	path := s.outputPath()
	if err := s.WriteDiagram(ctx, result, path); err != nil {
		return "", err
	}
	if err := s.opener(path); err != nil {
		return path, fmt.Errorf("open %s: %w", path, err)
	}
	return path, nil
}

func (s *ResultActionService) outputPath() string {
	if s.settings != nil {
		if settings, err := s.settings.Get(); err == nil && settings.Render.Output != "" {
			return settings.Render.Output
		}
	}
	return domain.DefaultAppSettings().Render.Output
}

// openPath opens a file in the default application.
func openPath(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", path)
	case osLinux:
		cmd = exec.Command("xdg-open", path)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// writeClipboard needs pbcopy, xclip/xsel/wl-copy or clip.exe depending on
// the platform.
func writeClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility found on %s", runtime.GOOS)
	}
	return clipboard.WriteAll(text)
}
