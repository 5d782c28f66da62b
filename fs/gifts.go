// Package fs reads and writes gift list files and page snapshots.
package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/giftlist"
)

// giftRecord is one entry of an exported gift list. The comment is only
// written when it is not blank.
type giftRecord struct {
	giftlist.Product
	Comment string `json:"comment,omitempty"`
}

// WriteGifts writes gifts to path as an indented JSON array in list order.
// The file is replaced atomically.
func WriteGifts(path string, gifts []*giftlist.Gift) error {
	records := make([]giftRecord, len(gifts))
	for i, g := range gifts {
		records[i] = giftRecord{Product: g.Product}
		if strings.TrimSpace(g.Comment) != "" {
			records[i].Comment = g.Comment
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding gifts: %w", err)
	}

	return writeFileAtomic(path, buf.Bytes())
}

// ReadGifts reads a gift list written by WriteGifts. Positions follow the
// order in the file. A missing file is an empty list.
func ReadGifts(path string) ([]*giftlist.Gift, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []*giftlist.Gift{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []giftRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, giftlist.Errorf(giftlist.EINVALID, "%s is not a gift list: %v", filepath.Base(path), err)
	}

	gifts := make([]*giftlist.Gift, len(records))
	for i, r := range records {
		gifts[i] = &giftlist.Gift{
			Position: i + 1,
			Product:  r.Product,
			Comment:  strings.TrimSpace(r.Comment),
		}
	}
	return gifts, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, creating the parent directory if needed.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
