package entry

import (
	"context"
	"fmt"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	"io"
	"sort"
	"strings"
	"time"
)

// Blob stores each entry as one object of a bucket: a directory with fileblob, S3 with s3blob,
// memory with memblob.
type Blob struct {
	Bucket           *blob.Bucket
	OperationTimeout time.Duration
}

func (b Blob) List(ctx context.Context) ([]string, error) {
	bCtx, bCancel := withTimeout(ctx, b.OperationTimeout)
	defer bCancel()

	titles := make([]string, 0)
	// nested keys can never be valid titles, only the top level is listed
	iter := b.Bucket.List(&blob.ListOptions{Delimiter: "/"})
	for {
		obj, err := iter.Next(bCtx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list entries: %w", err)
		}
		if obj.IsDir || !strings.HasSuffix(obj.Key, ext) {
			continue
		}
		titles = append(titles, strings.TrimSuffix(obj.Key, ext))
	}
	sort.Strings(titles)
	return titles, nil
}

func (b Blob) Exists(ctx context.Context, title string) (bool, error) {
	bCtx, bCancel := withTimeout(ctx, b.OperationTimeout)
	defer bCancel()

	exists, err := b.Bucket.Exists(bCtx, title+ext)
	if err != nil {
		return false, fmt.Errorf("failed to check entry %q: %w", title, err)
	}
	return exists, nil
}

func (b Blob) Get(ctx context.Context, title string) (string, bool, error) {
	bCtx, bCancel := withTimeout(ctx, b.OperationTimeout)
	defer bCancel()

	data, err := b.Bucket.ReadAll(bCtx, title+ext)
	switch {
	case gcerrors.Code(err) == gcerrors.NotFound:
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("failed to read entry %q: %w", title, err)
	default:
		return string(data), true, nil
	}
}

func (b Blob) Put(ctx context.Context, title, content string) error {
	bCtx, bCancel := withTimeout(ctx, b.OperationTimeout)
	defer bCancel()

	if err := b.Bucket.WriteAll(bCtx, title+ext, []byte(content), &blob.WriterOptions{
		ContentType: contentType,
	}); err != nil {
		return fmt.Errorf("failed to write entry %q: %w", title, err)
	}
	return nil
}
