package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kanji-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/kanji-cli/internal/core/domain"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the dictionary to AI assistants",
	Long:  `Serve the dictionary, stroke diagrams and study list over the Model Context Protocol.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server backed by the local snapshot.

Tools:      search_kanji, render_strokes
Resources:  kanji://characters/{literal}, kanji://strokes/{literal}, kanji://study

JSON-RPC is spoken over stdio unless --port selects streamable HTTP.

Examples:
  kanji mcp serve
  kanji mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "serve streamable HTTP on this port instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// listenAddr maps the port flag to an HTTP address. Zero means stdio.
func listenAddr(port int) (string, error) {
	switch {
	case port == 0:
		return "", nil
	case port < 0 || port > 65535:
		return "", fmt.Errorf("%w: port %d out of range 0-65535", domain.ErrInvalidInput, port)
	default:
		return fmt.Sprintf(":%d", port), nil
	}
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, _ := cmd.Flags().GetInt("port")
	addr, err := listenAddr(port)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search: searchService,
		Render: renderService,
		Study:  studyService,
	})
	if err != nil {
		return err
	}

	if addr == "" {
		return server.Run(cmd.Context())
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
