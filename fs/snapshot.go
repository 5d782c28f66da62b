package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/giftlist"
)

// Ensure SnapshotStore implements giftlist.SnapshotStore at compile time.
var _ giftlist.SnapshotStore = (*SnapshotStore)(nil)

// maxSlugLen bounds the query part of a snapshot file name, in runes.
const maxSlugLen = 48

// SnapshotStore saves fetched pages as <dir>/<slug>-<hash>.html. The hash
// is of the markup, so identical pages for one query share a file.
type SnapshotStore struct {
	dir string
}

// NewSnapshotStore creates a SnapshotStore writing into dir.
func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{dir: dir}
}

// SaveSnapshot writes html and returns the file path.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, query string, html string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%016x.html", Slug(query), xxhash.Sum64String(html))
	path := filepath.Join(s.dir, name)

	if err := writeFileAtomic(path, []byte(html)); err != nil {
		return "", fmt.Errorf("saving snapshot: %w", err)
	}
	return path, nil
}

// Slug turns a query into a file name fragment: lower-case letters and
// digits of any script, with other runs collapsed to a single dash.
// An empty result becomes "page".
func Slug(query string) string {
	var b strings.Builder
	n := 0
	dash := false
	for _, r := range strings.ToLower(query) {
		if n >= maxSlugLen {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
				n++
			}
			b.WriteRune(r)
			n++
			dash = false
			continue
		}
		dash = true
	}

	if b.Len() == 0 {
		return "page"
	}
	return b.String()
}
