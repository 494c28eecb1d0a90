package templates

import (
	"context"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"os"
)

// Watch reloads the renderer from dir every time a file in it is written or created.
// It runs until ctx is cancelled. A failed reload is logged and the previous set stays active.
func (r *Renderer) Watch(ctx context.Context, log *zap.SugaredLogger, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	log.Infow("templates", "status", "watching for changes", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// editors often save through a rename, which shows up as Create
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := r.Load(os.DirFS(dir)); err != nil {
				log.Errorw("templates", "status", "reload failed, keeping previous set", "dir", dir, "ERROR", err)
				continue
			}
			log.Infow("templates", "status", "reloaded", "file", event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorw("templates", "status", "watcher error", "ERROR", err)
		}
	}
}
