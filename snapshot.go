package giftlist

import "context"

// SnapshotStore keeps copies of fetched markup for offline inspection.
type SnapshotStore interface {
	// SaveSnapshot stores html under a name derived from query and
	// returns the location it was written to.
	SaveSnapshot(ctx context.Context, query string, html string) (string, error)
}
