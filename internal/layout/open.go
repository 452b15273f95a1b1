package layout

import (
	"bytes"
	"context"
	"fmt"
	"os"
)

// Open reads the layout of the file at path. The file is closed before Open
// returns, whatever the outcome.
func Open(ctx context.Context, path string, opts Options) (*Document, error) {
	src, err := ForFile(path, opts)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &DocumentError{Kind: KindOpen, Path: path, Page: -1, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &DocumentError{Kind: KindOpen, Path: path, Page: -1, Err: fmt.Errorf("stat: %w", err)}
	}

	doc, err := src.Read(ctx, f, info.Size())
	if err != nil {
		return nil, withPath(err, path)
	}
	return doc, nil
}

// ReadBytes reads the layout of an in-memory document. filename only picks
// the source.
func ReadBytes(ctx context.Context, data []byte, filename string, opts Options) (*Document, error) {
	src, err := ForFile(filename, opts)
	if err != nil {
		return nil, err
	}
	doc, err := src.Read(ctx, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, withPath(err, filename)
	}
	return doc, nil
}
