package view

import (
	"context"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Follow streams bytes appended to the file at path, starting at offset, to
// out. The bytes already present past offset are sent first. If the file is
// truncated, following restarts from its beginning. Follow returns when ctx
// is done or the watcher fails.
func Follow(ctx context.Context, path string, offset int64, out chan<- []byte) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create file watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return errors.Wrapf(err, "watch %s", path)
	}

	if offset, err = readFrom(ctx, path, offset, out); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if offset, err = readFrom(ctx, path, offset, out); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrapf(err, "watch %s", path)
		}
	}
}

// readFrom sends the contents of path past offset to out and returns the new
// offset.
func readFrom(ctx context.Context, path string, offset int64, out chan<- []byte) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return offset, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return offset, errors.Wrapf(err, "stat %s", path)
	}

	if info.Size() < offset {
		offset = 0
	}

	if info.Size() == offset {
		return offset, nil
	}

	data := make([]byte, info.Size()-offset)
	n, err := f.ReadAt(data, offset)
	if err != nil && err != io.EOF {
		return offset, errors.Wrapf(err, "read %s", path)
	}

	select {
	case out <- data[:n]:
	case <-ctx.Done():
	}

	return offset + int64(n), nil
}
