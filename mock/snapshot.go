package mock

import (
	"context"

	"github.com/fwojciec/giftlist"
)

var _ giftlist.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of giftlist.SnapshotStore.
type SnapshotStore struct {
	SaveSnapshotFn func(ctx context.Context, query, html string) (string, error)
}

func (s *SnapshotStore) SaveSnapshot(ctx context.Context, query, html string) (string, error) {
	return s.SaveSnapshotFn(ctx, query, html)
}
