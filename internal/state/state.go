package state

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"quickadd/internal/notion"
	"quickadd/internal/store"
)

// Storage slot names. The layout has no version field; the format is
// implicitly versioned by field presence.
const (
	keyCredential = "credential"
	keyDatabases  = "databases"
	keyShortcuts  = "shortcuts"
)

// App is the whole-value application state: the stored credential, the cached
// database summaries, and the saved shortcuts. It is loaded once at process
// start and flushed back wholesale on every mutation. A single active session
// per store is assumed; concurrent processes race last-writer-wins.
type App struct {
	kv store.KV

	Credential string
	Databases  []notion.Database
	Shortcuts  []Shortcut
}

// Load reads the three state slots from the KV store.
func Load(ctx context.Context, kv store.KV) (*App, error) {
	app := &App{kv: kv}

	credential, ok, err := kv.Get(ctx, keyCredential)
	if err != nil {
		return nil, fmt.Errorf("loading credential: %w", err)
	}
	if ok {
		app.Credential = credential
	}

	if err := loadSlot(ctx, kv, keyDatabases, &app.Databases); err != nil {
		return nil, err
	}
	if err := loadSlot(ctx, kv, keyShortcuts, &app.Shortcuts); err != nil {
		return nil, err
	}

	return app, nil
}

func loadSlot(ctx context.Context, kv store.KV, key string, out any) error {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

func (a *App) save(ctx context.Context) error {
	if err := a.kv.Set(ctx, keyCredential, a.Credential); err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	if err := saveSlot(ctx, a.kv, keyDatabases, a.Databases); err != nil {
		return err
	}
	if err := saveSlot(ctx, a.kv, keyShortcuts, a.Shortcuts); err != nil {
		return err
	}
	return nil
}

func saveSlot(ctx context.Context, kv store.KV, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// SetCredential stores the verified bearer credential.
func (a *App) SetCredential(ctx context.Context, token string) error {
	a.Credential = token
	return a.save(ctx)
}

// SetDatabases replaces the cached database summaries.
func (a *App) SetDatabases(ctx context.Context, databases []notion.Database) error {
	a.Databases = databases
	return a.save(ctx)
}

// ShortcutParams is the input to CreateShortcut. Bindings must already carry
// their schema snapshots, in the user's selection order.
type ShortcutParams struct {
	Name         string
	DatabaseID   string
	DatabaseName string
	Bindings     []PropertyBinding
	IncludeBody  bool
	Icon         string
	Color        string
}

// CreateShortcut validates params, persists the new shortcut, and returns it.
// The store is left untouched when validation fails.
func (a *App) CreateShortcut(ctx context.Context, params ShortcutParams) (Shortcut, error) {
	if strings.TrimSpace(params.Name) == "" {
		return Shortcut{}, &ValidationError{Reason: "shortcut name is required"}
	}
	if len(params.Bindings) == 0 {
		return Shortcut{}, &ValidationError{Reason: "at least one property must be selected"}
	}
	if strings.TrimSpace(params.DatabaseID) == "" {
		return Shortcut{}, &ValidationError{Reason: "target database is required"}
	}

	shortcut := Shortcut{
		ID:           uuid.NewString(),
		Name:         params.Name,
		DatabaseID:   params.DatabaseID,
		DatabaseName: params.DatabaseName,
		Bindings:     params.Bindings,
		IncludeBody:  params.IncludeBody,
		Icon:         params.Icon,
		Color:        params.Color,
	}
	if shortcut.Icon == "" {
		shortcut.Icon = DefaultIcon
	}
	if shortcut.Color == "" {
		shortcut.Color = DefaultColor
	}

	a.Shortcuts = append(a.Shortcuts, shortcut)
	if err := a.save(ctx); err != nil {
		a.Shortcuts = a.Shortcuts[:len(a.Shortcuts)-1]
		return Shortcut{}, err
	}
	return shortcut, nil
}

// Find returns the shortcut with the given id.
func (a *App) Find(id string) (Shortcut, error) {
	for _, shortcut := range a.Shortcuts {
		if shortcut.ID == id {
			return shortcut, nil
		}
	}
	return Shortcut{}, ErrShortcutNotFound
}

// FindByRef resolves a shortcut by id first, then by exact name.
func (a *App) FindByRef(ref string) (Shortcut, error) {
	if shortcut, err := a.Find(ref); err == nil {
		return shortcut, nil
	}
	for _, shortcut := range a.Shortcuts {
		if shortcut.Name == ref {
			return shortcut, nil
		}
	}
	return Shortcut{}, ErrShortcutNotFound
}

// DeleteShortcut removes the shortcut with the given id. Deleting an absent
// id is not an error.
func (a *App) DeleteShortcut(ctx context.Context, id string) error {
	kept := a.Shortcuts[:0]
	removed := false
	for _, shortcut := range a.Shortcuts {
		if shortcut.ID == id {
			removed = true
			continue
		}
		kept = append(kept, shortcut)
	}
	a.Shortcuts = kept
	if !removed {
		return nil
	}
	return a.save(ctx)
}

// ReplaceShortcut edits a shortcut by deleting the original and recreating it
// through the creation path. The original is gone before the replacement is
// validated, so a rejected replacement leaves the shortcut deleted.
func (a *App) ReplaceShortcut(ctx context.Context, id string, params ShortcutParams) (Shortcut, error) {
	if _, err := a.Find(id); err != nil {
		return Shortcut{}, err
	}
	if err := a.DeleteShortcut(ctx, id); err != nil {
		return Shortcut{}, err
	}
	return a.CreateShortcut(ctx, params)
}

// Reset clears the credential, the cached databases, and every shortcut.
func (a *App) Reset(ctx context.Context) error {
	a.Credential = ""
	a.Databases = nil
	a.Shortcuts = nil
	if err := a.kv.Clear(ctx); err != nil {
		return fmt.Errorf("resetting state: %w", err)
	}
	return nil
}
