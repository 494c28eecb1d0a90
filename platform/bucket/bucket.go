// Package bucket opens the gocloud bucket backing the blob entry store.
package bucket

import (
	"context"
	"fmt"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Open opens url ("file:///abs/dir", "mem://", "s3://bucket?region=...") when set,
// otherwise the local directory dir, created when missing
func Open(ctx context.Context, url, dir string) (*blob.Bucket, error) {
	if url != "" {
		b, err := blob.OpenBucket(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("could not open bucket %s: %w", url, err)
		}
		return b, nil
	}

	b, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, fmt.Errorf("could not open entries dir %s: %w", dir, err)
	}
	return b, nil
}
