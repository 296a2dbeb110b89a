package service

import (
	"Showcase/internal/pkg/bus"
	"Showcase/internal/pkg/consts"
	"Showcase/internal/store"
	"context"
	"errors"
	"testing"
)

func postRow(id, title string, tags []string, views int) store.Row {
	return store.Row{
		"id":          id,
		"title":       title,
		"slug":        title,
		"excerpt":     "excerpt",
		"content":     "some short content body",
		"cover_image": "",
		"tags":        tags,
		"views":       views,
		"published":   true,
		"created_at":  "2024-11-15T09:30:00Z",
	}
}

func TestBlogRefreshBuildsSnapshot(t *testing.T) {
	fs := newFakeStore()
	fs.seed(consts.TableBlogPosts,
		postRow("p1", "first", []string{"Go", "Web"}, 10),
		postRow("p2", "second", []string{"Web", "AWS"}, 5),
	)
	svc := NewBlogService(fs)

	svc.Refresh(context.Background())
	list := svc.List("")

	if !list.Ready {
		t.Fatal("expected snapshot to be ready after refresh")
	}
	if len(list.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(list.Posts))
	}
	wantTags := []string{"Go", "Web", "AWS"}
	if len(list.Tags) != len(wantTags) {
		t.Fatalf("expected tags %v, got %v", wantTags, list.Tags)
	}
	for i, tag := range wantTags {
		if list.Tags[i] != tag {
			t.Fatalf("expected tags in first-seen order %v, got %v", wantTags, list.Tags)
		}
	}
	if list.Posts[0].ReadTime < 1 {
		t.Fatalf("expected read time of at least 1 minute, got %d", list.Posts[0].ReadTime)
	}
}

func TestBlogListFiltersWithoutStoreCalls(t *testing.T) {
	fs := newFakeStore()
	fs.seed(consts.TableBlogPosts,
		postRow("p1", "first", []string{"Go"}, 0),
		postRow("p2", "second", []string{"AWS"}, 0),
	)
	svc := NewBlogService(fs)
	svc.Refresh(context.Background())

	fetchBefore, _, _ := fs.calls()
	list := svc.List("Go")
	fetchAfter, _, _ := fs.calls()

	if fetchAfter != fetchBefore {
		t.Fatalf("tag filter must not hit the store, fetch calls went %d -> %d", fetchBefore, fetchAfter)
	}
	if len(list.Posts) != 1 || list.Posts[0].ID != "p1" {
		t.Fatalf("expected only post p1, got %+v", list.Posts)
	}
	// 标签全集不随过滤收窄
	if len(list.Tags) != 2 {
		t.Fatalf("expected full tag set, got %v", list.Tags)
	}
}

func TestBlogOpenPostIncrementsViews(t *testing.T) {
	fs := newFakeStore()
	fs.seed(consts.TableBlogPosts, postRow("p1", "first", []string{"Go"}, 41))
	svc := NewBlogService(fs)
	svc.Refresh(context.Background())

	detail, err := svc.OpenPost(context.Background(), "p1")
	if err != nil {
		t.Fatalf("OpenPost failed: %v", err)
	}
	if detail.Views != 42 {
		t.Fatalf("expected views 42, got %d", detail.Views)
	}

	waitFor(t, func() bool {
		_, _, update := fs.calls()
		return update == 1
	})
}

func TestBlogOpenPostKeepsLocalViewsOnWriteFailure(t *testing.T) {
	fs := newFakeStore()
	fs.seed(consts.TableBlogPosts, postRow("p1", "first", []string{"Go"}, 7))
	fs.updateErr = errors.New("connection refused")
	svc := NewBlogService(fs)
	svc.Refresh(context.Background())

	detail, err := svc.OpenPost(context.Background(), "p1")
	if err != nil {
		t.Fatalf("OpenPost failed: %v", err)
	}
	if detail.Views != 8 {
		t.Fatalf("expected optimistic views 8 despite write failure, got %d", detail.Views)
	}

	waitFor(t, func() bool {
		_, _, update := fs.calls()
		return update == 1
	})
	// 回写失败不回滚
	if got := svc.List("").Posts[0].Views; got != 8 {
		t.Fatalf("expected snapshot views to stay 8, got %d", got)
	}
}

func TestBlogOpenPostUnknown(t *testing.T) {
	svc := NewBlogService(newFakeStore())
	svc.Refresh(context.Background())

	if _, err := svc.OpenPost(context.Background(), "missing"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestBlogWatchRefetchesOnChange(t *testing.T) {
	fs := newFakeStore()
	fs.seed(consts.TableBlogPosts, postRow("p1", "first", []string{"Go"}, 0))
	svc := NewBlogService(fs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	if got := len(svc.List("").Posts); got != 1 {
		t.Fatalf("expected 1 post after start, got %d", got)
	}

	fs.seed(consts.TableBlogPosts, postRow("p2", "second", []string{"Web"}, 0))
	if err := fs.bus.Publish(ctx, consts.TableBlogPosts, bus.EventInsert); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	waitFor(t, func() bool {
		return len(svc.List("").Posts) == 2
	})
}

func TestBlogReadyOnEmptyStore(t *testing.T) {
	svc := NewBlogService(newFakeStore())
	svc.Refresh(context.Background())

	list := svc.List("")
	if !list.Ready {
		t.Fatal("empty store must still yield a ready snapshot")
	}
	if len(list.Posts) != 0 || list.Posts == nil {
		t.Fatalf("expected empty non-nil post list, got %v", list.Posts)
	}
}
