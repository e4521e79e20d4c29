package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher reports edits to shader sources under a directory tree.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	reloads chan string
	done    chan struct{}
	once    sync.Once
}

// WatchShaders watches root and every directory below it.
func WatchShaders(root string) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}

	sw := &ShaderWatcher{
		watcher: w,
		reloads: make(chan string, 1),
		done:    make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

func (sw *ShaderWatcher) run() {
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !IsShaderSource(event.Name) || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			// One pending request is enough; the loop reloads everything
			select {
			case sw.reloads <- event.Name:
			default:
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("shader watcher", "err", err)
		}
	}
}

// Reloads delivers the path of a changed shader. Bursts collapse into one request.
func (sw *ShaderWatcher) Reloads() <-chan string {
	return sw.reloads
}

// Close stops watching. It is safe to call more than once.
func (sw *ShaderWatcher) Close() error {
	var err error
	sw.once.Do(func() {
		close(sw.done)
		err = sw.watcher.Close()
	})
	return err
}

// IsShaderSource reports whether path names a GLSL stage file.
func IsShaderSource(path string) bool {
	switch filepath.Ext(path) {
	case ".vert", ".frag", ".glsl":
		return true
	}
	return false
}
