package main

import (
	"context"
	"errors"
	"fmt"

	"quickadd/internal/config"
	"quickadd/internal/notion"
	"quickadd/internal/state"
	"quickadd/internal/store"
	"quickadd/internal/store/postgres"
	"quickadd/internal/store/sqlite"
)

const configPath = "quickadd.yaml"

func openKV(ctx context.Context, cfg *config.Config) (store.KV, error) {
	var (
		kv  store.KV
		err error
	)
	switch cfg.Store.Driver {
	case "postgres":
		kv, err = postgres.New(ctx, cfg.Store.DSN)
	default:
		kv, err = sqlite.New(ctx, cfg.Store.DSN)
	}
	if err != nil {
		return nil, err
	}
	if err := kv.EnsureSchema(ctx); err != nil {
		kv.Close(ctx)
		return nil, err
	}
	return kv, nil
}

func loadApp(ctx context.Context) (*config.Config, *state.App, store.KV, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	kv, err := openKV(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app, err := state.Load(ctx, kv)
	if err != nil {
		kv.Close(ctx)
		return nil, nil, nil, err
	}
	return cfg, app, kv, nil
}

func newAPIClient(cfg *config.Config, app *state.App) (*notion.Client, error) {
	if app.Credential == "" {
		return nil, fmt.Errorf("no credential stored; run `quickadd connect` first")
	}
	return notion.NewClient(cfg.Notion.BaseURL, cfg.Notion.APIVersion, app.Credential), nil
}

// friendlyError rewrites classified remote and local errors into the single
// user-facing message each flow surfaces.
func friendlyError(err error) error {
	var authErr *notion.AuthError
	if errors.As(err, &authErr) {
		return fmt.Errorf("credential was rejected by the service: %s", authErr.Message)
	}
	var netErr *notion.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Errorf("could not reach the service: %v", netErr.Err)
	}
	var apiErr *notion.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("the service reported an error: %s", apiErr.Message)
	}
	var validationErr *state.ValidationError
	if errors.As(err, &validationErr) {
		return errors.New(validationErr.Reason)
	}
	return err
}
