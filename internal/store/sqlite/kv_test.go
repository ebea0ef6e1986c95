package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "quickadd.db")
	client, err := New(ctx, dsn)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { client.Close(ctx) })

	if err := client.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensuring schema: %v", err)
	}
	return client
}

func TestKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	if _, ok, err := client.Get(ctx, "credential"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := client.Set(ctx, "credential", "secret_abc"); err != nil {
		t.Fatalf("setting: %v", err)
	}
	value, ok, err := client.Get(ctx, "credential")
	if err != nil || !ok {
		t.Fatalf("getting: ok=%v err=%v", ok, err)
	}
	if value != "secret_abc" {
		t.Fatalf("unexpected value: %q", value)
	}
}

func TestKVSetOverwrites(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	if err := client.Set(ctx, "shortcuts", "[]"); err != nil {
		t.Fatalf("setting: %v", err)
	}
	if err := client.Set(ctx, "shortcuts", `[{"id":"a"}]`); err != nil {
		t.Fatalf("overwriting: %v", err)
	}

	value, ok, err := client.Get(ctx, "shortcuts")
	if err != nil || !ok {
		t.Fatalf("getting: ok=%v err=%v", ok, err)
	}
	if value != `[{"id":"a"}]` {
		t.Fatalf("unexpected value: %q", value)
	}
}

func TestKVClear(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	for _, key := range []string{"credential", "databases", "shortcuts"} {
		if err := client.Set(ctx, key, "x"); err != nil {
			t.Fatalf("setting %s: %v", key, err)
		}
	}

	if err := client.Clear(ctx); err != nil {
		t.Fatalf("clearing: %v", err)
	}
	for _, key := range []string{"credential", "databases", "shortcuts"} {
		if _, ok, err := client.Get(ctx, key); err != nil || ok {
			t.Fatalf("key %s survived clear: ok=%v err=%v", key, ok, err)
		}
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	if err := client.EnsureSchema(ctx); err != nil {
		t.Fatalf("repeat EnsureSchema: %v", err)
	}
	if err := client.Set(ctx, "credential", "secret_abc"); err != nil {
		t.Fatalf("setting after repeat: %v", err)
	}
}
