package bucket

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "entries")

	b, err := Open(context.Background(), "", dir)
	if err != nil {
		t.Fatalf("Test OpenDir: Should open and create the dir: %v", err)
	}
	defer b.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("Test OpenDir: Should have created %s: %v", dir, err)
	}
}

func TestOpenURL(t *testing.T) {
	b, err := Open(context.Background(), "mem://", "")
	if err != nil {
		t.Fatalf("Test OpenURL: Should open a mem bucket: %v", err)
	}
	defer b.Close()

	if err := b.WriteAll(context.Background(), "Go.md", []byte("# Go"), nil); err != nil {
		t.Fatalf("Test OpenURL: Should write to the bucket: %v", err)
	}
}
