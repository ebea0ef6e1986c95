package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"quickadd/internal/flow"
	"quickadd/internal/state"
)

type Server struct {
	app    *state.App
	client flow.Client
	mcp    *sdk.Server
}

func NewServer(app *state.App, client flow.Client, version string) *Server {
	s := &Server{
		app:    app,
		client: client,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "quickadd",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
