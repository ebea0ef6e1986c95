package main

import (
	"context"

	"github.com/spf13/cobra"

	"quickadd/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, app, kv, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	client, err := newAPIClient(cfg, app)
	if err != nil {
		return err
	}

	server := mcp.NewServer(app, client, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
