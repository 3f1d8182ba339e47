package source

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
)

// NewURL downloads the document at the supplied URL through the abstract
// file system and yields one symbol per rune of its content. A nil fs
// argument falls back to the default afs service.
func NewURL(ctx context.Context, fs afs.Service, URL string, options ...storage.Option) (*Slice[string], error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load symbols from %v: %w", URL, err)
	}
	return NewText(string(data)), nil
}
