package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/mnemosyne/pkg/domain/interfaces"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/repository/memory"
)

func newApplicationEntry(id types.BookmarkID, tag types.TagName, cachedAt time.Time) *model.ApplicationEntry {
	bm := &model.Bookmark{
		ID:             id,
		Title:          "Go memory model",
		URL:            "https://go.dev/ref/mem",
		Tags:           []types.TagName{"golang"},
		LastEditedTime: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	return &model.ApplicationEntry{
		ID:            model.NewEntryID(),
		Fingerprint:   model.NewFingerprint(bm),
		TargetTag:     tag,
		ShouldHaveTag: true,
		Reasoning:     "the page documents Go language semantics",
		CachedAt:      cachedAt,
	}
}

func runApplicationRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put then Get round-trips the entry", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id := types.BookmarkID(fmt.Sprintf("bm-%d", time.Now().UnixNano()))
		entry := newApplicationEntry(id, "golang", time.Now().UTC().Truncate(time.Second))

		gt.NoError(t, repo.Application().Put(ctx, entry)).Required()

		got, err := repo.Application().Get(ctx, entry.Key())
		gt.NoError(t, err).Required()

		gt.Value(t, got.ID).Equal(entry.ID)
		gt.Bool(t, got.Fingerprint.Match(entry.Fingerprint)).True()
		gt.Value(t, got.TargetTag).Equal(types.TagName("golang"))
		gt.Bool(t, got.ShouldHaveTag).True()
		gt.Value(t, got.Reasoning).Equal(entry.Reasoning)
		gt.Bool(t, got.CachedAt.Equal(entry.CachedAt)).True()
	})

	t.Run("Put replaces the entry with the same key", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id := types.BookmarkID(fmt.Sprintf("bm-%d", time.Now().UnixNano()))
		first := newApplicationEntry(id, "golang", time.Now().UTC())
		gt.NoError(t, repo.Application().Put(ctx, first)).Required()

		second := newApplicationEntry(id, "golang", time.Now().UTC())
		second.ShouldHaveTag = false
		gt.NoError(t, repo.Application().Put(ctx, second)).Required()

		got, err := repo.Application().Get(ctx, first.Key())
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(second.ID)
		gt.Bool(t, got.ShouldHaveTag).False()

		all, err := repo.Application().List(ctx)
		gt.NoError(t, err).Required()

		count := 0
		for _, e := range all {
			if e.Key() == first.Key() {
				count++
			}
		}
		gt.Number(t, count).Equal(1)
	})

	t.Run("entries for different tags coexist", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id := types.BookmarkID(fmt.Sprintf("bm-%d", time.Now().UnixNano()))
		golang := newApplicationEntry(id, "golang", time.Now().UTC())
		rust := newApplicationEntry(id, "rust", time.Now().UTC())

		gt.NoError(t, repo.Application().Put(ctx, golang)).Required()
		gt.NoError(t, repo.Application().Put(ctx, rust)).Required()

		got, err := repo.Application().Get(ctx, rust.Key())
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(rust.ID)
	})

	t.Run("Get returns ErrNotFound for unknown key", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Application().Get(ctx, fmt.Sprintf("bm-%d|golang", time.Now().UnixNano()))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("DeleteOlderThan removes only entries before the cutoff", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		now := time.Now().UTC().Truncate(time.Second)
		old := newApplicationEntry(types.BookmarkID(fmt.Sprintf("bm-old-%d", now.UnixNano())), "golang", now.Add(-40*24*time.Hour))
		fresh := newApplicationEntry(types.BookmarkID(fmt.Sprintf("bm-new-%d", now.UnixNano())), "golang", now.Add(-24*time.Hour))

		gt.NoError(t, repo.Application().Put(ctx, old)).Required()
		gt.NoError(t, repo.Application().Put(ctx, fresh)).Required()

		removed, err := repo.Application().DeleteOlderThan(ctx, now.Add(-30*24*time.Hour))
		gt.NoError(t, err).Required()
		gt.Number(t, removed).Equal(1)

		_, err = repo.Application().Get(ctx, old.Key())
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()

		_, err = repo.Application().Get(ctx, fresh.Key())
		gt.NoError(t, err)
	})

	t.Run("Clear removes everything", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		entry := newApplicationEntry(types.BookmarkID(fmt.Sprintf("bm-%d", time.Now().UnixNano())), "golang", time.Now().UTC())
		gt.NoError(t, repo.Application().Put(ctx, entry)).Required()

		gt.NoError(t, repo.Application().Clear(ctx)).Required()

		_, err := repo.Application().Get(ctx, entry.Key())
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})
}

func TestMemoryApplicationRepository(t *testing.T) {
	runApplicationRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreApplicationRepository(t *testing.T) {
	runApplicationRepositoryTest(t, newFirestoreRepository)
}
