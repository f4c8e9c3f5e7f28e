package cli

import (
	"fmt"

	"github.com/knoba/confgrid/cmd/confgrid/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Start MCP server exposing the schedule",
	Long: `Start an MCP (Model Context Protocol) server over stdio that lets an
assistant list the conference schedule and read or toggle favorites.

Configure in your MCP client, e.g.:
  {
    "mcpServers": {
      "confgrid": {
        "command": "confgrid",
        "args": ["serve-mcp"]
      }
    }
  }
`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if err := mcp.StartServer(cfg.DBPath, cfg.Location()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
