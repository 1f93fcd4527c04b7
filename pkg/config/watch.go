package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the config file and reloads the global configuration
// whenever it is written. onReload is called after each reload attempt
// with the new configuration, or with the reload error. Watch blocks
// until stop is closed or the watcher fails.
func Watch(stop <-chan struct{}, onReload func(*Config, error)) error {
	path := Get().ConfigFilePath()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", path, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				err := Reload()
				if onReload != nil {
					onReload(Get(), err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onReload != nil {
				onReload(nil, err)
			}
		case <-stop:
			return nil
		}
	}
}
