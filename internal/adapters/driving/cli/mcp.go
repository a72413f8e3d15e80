package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovh/ovhdata-cli/internal/adapters/driving/mcp"
	"github.com/ovh/ovhdata-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server giving AI assistants read-only
access to the Data Integration resources of the selected project.

By default, the server communicates over stdio using JSON-RPC.
Use --port to serve over HTTP instead.

Examples:
  ovhdata-cli mcp serve
  ovhdata-cli mcp serve --port 8080 --service-name <project>`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	if _, err := requireDI(); err != nil {
		return err
	}
	ports := &mcp.Ports{DataIntegration: diService}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if watchConfig != nil {
		ctx := cmd.Context()
		go func() {
			if err := watchConfig(ctx); err != nil {
				logger.Warn("config changes will not be picked up: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(errOut(cmd), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
