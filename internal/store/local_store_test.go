package store

import (
	"Showcase/internal/pkg/bus"
	"Showcase/internal/pkg/kvstore"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupLocalStore(t *testing.T) (*LocalStore, *bus.MemBus, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showcase.json")
	kv, err := kvstore.Open(path)
	if err != nil {
		t.Fatalf("open kvstore failed: %v", err)
	}
	b := bus.NewMemBus()
	return NewLocalStore(kv, b), b, path
}

func TestLocalStoreInsertFillsServerFields(t *testing.T) {
	s, b, _ := setupLocalStore(t)
	sub := b.Subscribe("blog_posts", bus.EventInsert)
	defer sub.Close()

	row, err := s.Insert(context.Background(), "blog_posts", Row{"title": "hello", "views": 0})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	id, _ := row["id"].(string)
	if id == "" {
		t.Fatal("expected generated id")
	}
	ts, _ := row["created_at"].(string)
	if _, err = time.Parse(time.RFC3339, ts); err != nil {
		t.Fatalf("expected RFC3339 created_at, got %q", ts)
	}

	select {
	case ev := <-sub.Events():
		if ev != bus.EventInsert {
			t.Fatalf("expected insert event, got %s", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a change notification after insert")
	}

	rows, err := s.FetchAll(context.Background(), "blog_posts", nil, nil)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(rows) != 1 || rows[0]["title"] != "hello" {
		t.Fatalf("expected inserted row back, got %v", rows)
	}
}

func TestLocalStoreFilterAndOrder(t *testing.T) {
	s, _, _ := setupLocalStore(t)
	ctx := context.Background()

	seed := []Row{
		{"id": "p1", "title": "old", "published": true, "created_at": "2024-01-01T00:00:00Z"},
		{"id": "p2", "title": "draft", "published": false, "created_at": "2024-02-01T00:00:00Z"},
		{"id": "p3", "title": "new", "published": true, "created_at": "2024-03-01T00:00:00Z"},
	}
	if err := s.SeedIfEmpty("blog_posts", seed); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	rows, err := s.FetchAll(ctx, "blog_posts", Filter{"published": true},
		&Order{Column: "created_at", Desc: true})
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 published rows, got %d", len(rows))
	}
	if rows[0]["id"] != "p3" || rows[1]["id"] != "p1" {
		t.Fatalf("expected newest first, got %v then %v", rows[0]["id"], rows[1]["id"])
	}
}

func TestLocalStoreUpdate(t *testing.T) {
	s, b, _ := setupLocalStore(t)
	ctx := context.Background()

	row, err := s.Insert(ctx, "guestbook_entries", Row{"name": "sami", "likes": 0})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	id, _ := row["id"].(string)

	sub := b.Subscribe("guestbook_entries", bus.EventUpdate)
	defer sub.Close()

	if err = s.Update(ctx, "guestbook_entries", id, Row{"likes": 5}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	select {
	case <-sub.Events():
	case <-time.After(time.Second):
		t.Fatal("expected a change notification after update")
	}

	rows, _ := s.FetchAll(ctx, "guestbook_entries", Filter{"id": id}, nil)
	if len(rows) != 1 {
		t.Fatalf("expected updated row, got %v", rows)
	}
	if got := canon(rows[0]["likes"]); got != "5" {
		t.Fatalf("expected likes 5, got %s", got)
	}
}

func TestLocalStoreUpdateUnknownRow(t *testing.T) {
	s, _, _ := setupLocalStore(t)

	err := s.Update(context.Background(), "guestbook_entries", "missing", Row{"likes": 1})
	if !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
}

func TestLocalStorePersistsAcrossReopen(t *testing.T) {
	s, _, path := setupLocalStore(t)
	ctx := context.Background()

	if _, err := s.Insert(ctx, "blog_posts", Row{"title": "survives"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	kv, err := kvstore.Open(path)
	if err != nil {
		t.Fatalf("reopen kvstore failed: %v", err)
	}
	reopened := NewLocalStore(kv, bus.NewMemBus())

	rows, err := reopened.FetchAll(ctx, "blog_posts", nil, nil)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(rows) != 1 || rows[0]["title"] != "survives" {
		t.Fatalf("expected persisted row after reopen, got %v", rows)
	}
}

func TestLocalStoreSeedIfEmptyIsOneShot(t *testing.T) {
	s, _, _ := setupLocalStore(t)
	ctx := context.Background()

	if err := s.SeedIfEmpty("blog_posts", []Row{{"id": "p1", "title": "first"}}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := s.SeedIfEmpty("blog_posts", []Row{{"id": "p2", "title": "second"}}); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	rows, _ := s.FetchAll(ctx, "blog_posts", nil, nil)
	if len(rows) != 1 || rows[0]["id"] != "p1" {
		t.Fatalf("expected original seed untouched, got %v", rows)
	}
}
