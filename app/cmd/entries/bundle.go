package entries

import (
	"bytes"
	"context"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/natefinch/atomic"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"gopkg.in/yaml.v3"
	"io"
)

// Bundle is the yaml file import and export exchange
type Bundle struct {
	Entries []entry.Entry `yaml:"entries"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	titleStyle  = lipgloss.NewStyle().PaddingLeft(2)
	countStyle  = lipgloss.NewStyle().Faint(true)
)

// List writes every title of store to w
func List(ctx context.Context, store entry.Store, w io.Writer) error {
	titles, err := entry.List(ctx, store)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, headerStyle.Render("Entries"))
	for _, t := range titles {
		fmt.Fprintln(w, titleStyle.Render(t))
	}
	fmt.Fprintln(w, countStyle.Render(fmt.Sprintf("%d entries", len(titles))))
	return nil
}

// Import saves every entry of the bundle read from r, overwriting existing ones. Invalid
// entries abort the import before anything is written.
func Import(ctx context.Context, store entry.Store, r io.Reader) (int, error) {
	var b Bundle
	if err := yaml.NewDecoder(r).Decode(&b); err != nil && err != io.EOF {
		return 0, fmt.Errorf("decode bundle: %w", err)
	}

	reqs := make([]entry.EditEntryRequest, 0, len(b.Entries))
	for i, e := range b.Entries {
		req, err := entry.ValidateEditEntry(entry.EditEntryRequest{Title: e.Title, Content: e.Content})
		if err != nil {
			return 0, fmt.Errorf("entry %d %q: %w", i, e.Title, err)
		}
		reqs = append(reqs, req)
	}

	for i, req := range reqs {
		if err := entry.Save(ctx, store, req); err != nil {
			return i, fmt.Errorf("save %s: %w", req.Title, err)
		}
	}
	return len(reqs), nil
}

// Export writes every entry of store to path as a bundle. The file is replaced atomically.
func Export(ctx context.Context, store entry.Store, path string) (int, error) {
	titles, err := entry.List(ctx, store)
	if err != nil {
		return 0, err
	}

	b := Bundle{Entries: make([]entry.Entry, 0, len(titles))}
	for _, t := range titles {
		e, err := entry.Find(ctx, store, t)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", t, err)
		}
		b.Entries = append(b.Entries, e)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return 0, fmt.Errorf("encode bundle: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("encode bundle: %w", err)
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(b.Entries), nil
}
