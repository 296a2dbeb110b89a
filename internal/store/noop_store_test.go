package store

import (
	"Showcase/internal/pkg/bus"
	"context"
	"testing"
)

func TestNoopStoreDegradesToEmptySuccess(t *testing.T) {
	s := NewNoopStore()
	ctx := context.Background()

	rows, err := s.FetchAll(ctx, "blog_posts", Filter{"published": true}, nil)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", rows)
	}

	row, err := s.Insert(ctx, "guestbook_entries", Row{"name": "sami"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if row["name"] != "sami" {
		t.Fatalf("expected echoed row, got %v", row)
	}

	if err = s.Update(ctx, "guestbook_entries", "any", Row{"likes": 1}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestNoopStoreSubscriptionNeverFires(t *testing.T) {
	s := NewNoopStore()
	sub := s.Subscribe("blog_posts", bus.EventAll)

	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event %s from inert subscription", ev)
	default:
	}

	sub.Close()
	if _, ok := <-sub.Events(); ok {
		t.Fatal("expected channel closed after Close")
	}
}
