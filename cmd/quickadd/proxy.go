package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quickadd/internal/config"
	"quickadd/internal/proxy"
)

func proxyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "proxy",
		Short: "Run the CORS reverse proxy in front of the service API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProxy()
		},
	}
}

func runProxy() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	handler := proxy.NewHandler(cfg.Notion.BaseURL, cfg.Proxy.Prefix, cfg.Notion.APIVersion, logger)

	mux := http.NewServeMux()
	mux.Handle(cfg.Proxy.Prefix+"/", handler)

	logger.Info("proxy listening",
		zap.String("addr", cfg.Proxy.Listen),
		zap.String("prefix", cfg.Proxy.Prefix),
		zap.String("upstream", cfg.Notion.BaseURL))

	return http.ListenAndServe(cfg.Proxy.Listen, mux)
}
