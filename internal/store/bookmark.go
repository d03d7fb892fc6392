package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"opticart/internal/backend"
	"opticart/internal/domain"
	applog "opticart/internal/log"
)

// BookmarkGateway is the slice of the backend client the bookmark store needs.
type BookmarkGateway interface {
	ListBookmarks(ctx context.Context, page int) ([]domain.Bookmark, domain.Pagination, error)
	AddBookmark(ctx context.Context, productID int) error
	RemoveBookmark(ctx context.Context, productID int) error
}

// Bookmarks keeps a name-keyed view over the server's per-product-id
// bookmark records. The catalog lists color and material variants of one
// frame under a single display name, so toggling a name must toggle every
// underlying id together. The grouping heuristic lives in groupKey so a
// backend-provided group id can replace it without touching the toggle
// logic.
type Bookmarks struct {
	mu        sync.RWMutex
	names     map[string]struct{}
	idsByName map[string][]int
	records   []domain.Bookmark
	api       BookmarkGateway
	groupKey  func(domain.Bookmark) string
}

func NewBookmarks(api BookmarkGateway) *Bookmarks {
	return &Bookmarks{
		names:     map[string]struct{}{},
		idsByName: map[string][]int{},
		api:       api,
		groupKey:  func(b domain.Bookmark) string { return b.Product.Name },
	}
}

// Fetch rebuilds the derived view from scratch off page 1 of the server's
// records. One page covers the wishlist sizes we serve. Fetch failures
// leave the previous view in place.
func (s *Bookmarks) Fetch(ctx context.Context) {
	recs, _, err := s.api.ListBookmarks(ctx, 1)
	if err != nil {
		applog.Backend("bookmarks.fetch.fail", err, nil)
		return
	}
	names := make(map[string]struct{}, len(recs))
	byName := make(map[string][]int, len(recs))
	for _, b := range recs {
		key := s.groupKey(b)
		names[key] = struct{}{}
		byName[key] = append(byName[key], b.ProductID)
	}
	s.mu.Lock()
	s.names = names
	s.idsByName = byName
	s.records = recs
	s.mu.Unlock()
}

func (s *Bookmarks) IsBookmarked(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.names[name]
	return ok
}

// Names returns the bookmarked display names.
func (s *Bookmarks) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.names))
}

// Records returns the raw server records from the last fetch, for the
// wishlist page.
func (s *Bookmarks) Records() []domain.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// ToggleByName flips the bookmark state of one display name. Target ids are
// the union of the ids remembered from the last fetch and the caller's
// candidates: the caller typically knows only the variant it rendered, while
// the server may hold bookmarks for siblings.
//
// Removal tolerates per-id failures (an already-deleted record must not
// abort the batch or revert the UI). An add failure fails the whole toggle
// and rolls the optimistic flip back. On success the view is refetched so
// any partial drift self-heals.
func (s *Bookmarks) ToggleByName(ctx context.Context, name string, candidateIDs []int) (added bool, err error) {
	s.mu.Lock()
	_, marked := s.names[name]
	targets := dedupe(append(slices.Clone(s.idsByName[name]), candidateIDs...))
	// optimistic flip
	if marked {
		delete(s.names, name)
	} else {
		s.names[name] = struct{}{}
	}
	s.mu.Unlock()

	if marked {
		for _, id := range targets {
			if rerr := s.api.RemoveBookmark(ctx, id); rerr != nil {
				if backend.IsNotFound(rerr) {
					continue // record already gone
				}
				applog.Backend("bookmarks.remove.fail", rerr, map[string]any{"product": id})
			}
		}
		s.Fetch(ctx)
		return false, nil
	}

	for _, id := range targets {
		if aerr := s.api.AddBookmark(ctx, id); aerr != nil {
			s.mu.Lock()
			delete(s.names, name)
			s.mu.Unlock()
			applog.Backend("bookmarks.add.fail", aerr, map[string]any{"product": id})
			return false, aerr
		}
	}
	s.Fetch(ctx)
	return true, nil
}
