package state

import (
	"context"
	"errors"
	"testing"

	"quickadd/internal/notion"
)

// memKV is an in-memory store.KV for exercising the state layer without a
// database.
type memKV struct {
	data map[string]string
	sets int
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Close(ctx context.Context) error        { return nil }
func (m *memKV) EnsureSchema(ctx context.Context) error { return nil }

func (m *memKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memKV) Set(ctx context.Context, key, value string) error {
	m.sets++
	m.data[key] = value
	return nil
}

func (m *memKV) Clear(ctx context.Context) error {
	m.data = make(map[string]string)
	return nil
}

func titleBinding() PropertyBinding {
	return PropertyBinding{
		Name:   "Title",
		Type:   notion.TypeTitle,
		Schema: notion.PropertySchema{Name: "Title", Type: notion.TypeTitle},
	}
}

func TestLoadEmptyStore(t *testing.T) {
	app, err := Load(context.Background(), newMemKV())
	if err != nil {
		t.Fatalf("loading empty store: %v", err)
	}
	if app.Credential != "" || len(app.Databases) != 0 || len(app.Shortcuts) != 0 {
		t.Fatalf("expected blank state, got %+v", app)
	}
}

func TestStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()

	app, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if err := app.SetCredential(ctx, "secret_abc"); err != nil {
		t.Fatalf("setting credential: %v", err)
	}
	if err := app.SetDatabases(ctx, []notion.Database{{ID: "db-1", Title: "Tasks"}}); err != nil {
		t.Fatalf("setting databases: %v", err)
	}
	created, err := app.CreateShortcut(ctx, ShortcutParams{
		Name:       "Quick task",
		DatabaseID: "db-1",
		Bindings:   []PropertyBinding{titleBinding()},
	})
	if err != nil {
		t.Fatalf("creating shortcut: %v", err)
	}

	reloaded, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if reloaded.Credential != "secret_abc" {
		t.Fatalf("credential lost: %q", reloaded.Credential)
	}
	if len(reloaded.Databases) != 1 || reloaded.Databases[0].Title != "Tasks" {
		t.Fatalf("databases lost: %+v", reloaded.Databases)
	}
	if len(reloaded.Shortcuts) != 1 || reloaded.Shortcuts[0].ID != created.ID {
		t.Fatalf("shortcuts lost: %+v", reloaded.Shortcuts)
	}
}

func TestCreateShortcutValidation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		params ShortcutParams
	}{
		{"blank name", ShortcutParams{Name: "  ", DatabaseID: "db-1", Bindings: []PropertyBinding{titleBinding()}}},
		{"no bindings", ShortcutParams{Name: "x", DatabaseID: "db-1"}},
		{"no database", ShortcutParams{Name: "x", Bindings: []PropertyBinding{titleBinding()}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := newMemKV()
			app, err := Load(ctx, kv)
			if err != nil {
				t.Fatalf("loading: %v", err)
			}

			_, err = app.CreateShortcut(ctx, tc.params)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(app.Shortcuts) != 0 {
				t.Fatalf("rejected shortcut was kept: %+v", app.Shortcuts)
			}
			if kv.sets != 0 {
				t.Fatalf("store written despite validation failure")
			}
		})
	}
}

func TestCreateShortcutDefaults(t *testing.T) {
	ctx := context.Background()
	app, err := Load(ctx, newMemKV())
	if err != nil {
		t.Fatalf("loading: %v", err)
	}

	created, err := app.CreateShortcut(ctx, ShortcutParams{
		Name:       "Quick task",
		DatabaseID: "db-1",
		Bindings:   []PropertyBinding{titleBinding()},
	})
	if err != nil {
		t.Fatalf("creating shortcut: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Icon != DefaultIcon || created.Color != DefaultColor {
		t.Fatalf("expected display defaults, got icon=%q color=%q", created.Icon, created.Color)
	}
}

func TestShortcutOrderPreserved(t *testing.T) {
	ctx := context.Background()
	app, err := Load(ctx, newMemKV())
	if err != nil {
		t.Fatalf("loading: %v", err)
	}

	for _, name := range []string{"first", "second", "third"} {
		if _, err := app.CreateShortcut(ctx, ShortcutParams{
			Name:       name,
			DatabaseID: "db-1",
			Bindings:   []PropertyBinding{titleBinding()},
		}); err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
	}

	got := make([]string, 0, len(app.Shortcuts))
	for _, s := range app.Shortcuts {
		got = append(got, s.Name)
	}
	if got[0] != "first" || got[1] != "second" || got[2] != "third" {
		t.Fatalf("creation order not preserved: %v", got)
	}
}

func TestFindByRef(t *testing.T) {
	ctx := context.Background()
	app, err := Load(ctx, newMemKV())
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	created, err := app.CreateShortcut(ctx, ShortcutParams{
		Name:       "Inbox",
		DatabaseID: "db-1",
		Bindings:   []PropertyBinding{titleBinding()},
	})
	if err != nil {
		t.Fatalf("creating shortcut: %v", err)
	}

	byID, err := app.FindByRef(created.ID)
	if err != nil || byID.ID != created.ID {
		t.Fatalf("lookup by id failed: %v", err)
	}
	byName, err := app.FindByRef("Inbox")
	if err != nil || byName.ID != created.ID {
		t.Fatalf("lookup by name failed: %v", err)
	}
	if _, err := app.FindByRef("missing"); !errors.Is(err, ErrShortcutNotFound) {
		t.Fatalf("expected ErrShortcutNotFound, got %v", err)
	}
}

func TestDeleteShortcut(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	app, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	created, err := app.CreateShortcut(ctx, ShortcutParams{
		Name:       "Inbox",
		DatabaseID: "db-1",
		Bindings:   []PropertyBinding{titleBinding()},
	})
	if err != nil {
		t.Fatalf("creating shortcut: %v", err)
	}

	if err := app.DeleteShortcut(ctx, created.ID); err != nil {
		t.Fatalf("deleting: %v", err)
	}
	if len(app.Shortcuts) != 0 {
		t.Fatalf("shortcut still present")
	}

	writes := kv.sets
	if err := app.DeleteShortcut(ctx, created.ID); err != nil {
		t.Fatalf("repeat delete must be a no-op, got %v", err)
	}
	if kv.sets != writes {
		t.Fatalf("no-op delete wrote the store")
	}
}

func TestReplaceShortcut(t *testing.T) {
	ctx := context.Background()
	app, err := Load(ctx, newMemKV())
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	created, err := app.CreateShortcut(ctx, ShortcutParams{
		Name:       "Inbox",
		DatabaseID: "db-1",
		Bindings:   []PropertyBinding{titleBinding()},
	})
	if err != nil {
		t.Fatalf("creating shortcut: %v", err)
	}

	replaced, err := app.ReplaceShortcut(ctx, created.ID, ShortcutParams{
		Name:       "Inbox v2",
		DatabaseID: "db-1",
		Bindings:   []PropertyBinding{titleBinding()},
	})
	if err != nil {
		t.Fatalf("replacing: %v", err)
	}
	if replaced.ID == created.ID {
		t.Fatalf("replacement must get a fresh id")
	}
	if _, err := app.Find(created.ID); !errors.Is(err, ErrShortcutNotFound) {
		t.Fatalf("original still present")
	}
	if len(app.Shortcuts) != 1 || app.Shortcuts[0].Name != "Inbox v2" {
		t.Fatalf("unexpected shortcuts: %+v", app.Shortcuts)
	}

	if _, err := app.ReplaceShortcut(ctx, "missing", ShortcutParams{}); !errors.Is(err, ErrShortcutNotFound) {
		t.Fatalf("expected ErrShortcutNotFound, got %v", err)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	app, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if err := app.SetCredential(ctx, "secret_abc"); err != nil {
		t.Fatalf("setting credential: %v", err)
	}
	if _, err := app.CreateShortcut(ctx, ShortcutParams{
		Name:       "Inbox",
		DatabaseID: "db-1",
		Bindings:   []PropertyBinding{titleBinding()},
	}); err != nil {
		t.Fatalf("creating shortcut: %v", err)
	}

	if err := app.Reset(ctx); err != nil {
		t.Fatalf("resetting: %v", err)
	}
	if app.Credential != "" || app.Shortcuts != nil || app.Databases != nil {
		t.Fatalf("in-memory state survived reset: %+v", app)
	}
	if len(kv.data) != 0 {
		t.Fatalf("store not cleared: %v", kv.data)
	}
}
