// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// Watcher - signals when a configuration file is written
//
// the containing directory is watched because editors often replace
// the file rather than write to it
type Watcher struct {
	sync.Mutex

	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	done     chan struct{}
	started  bool
}

// NewWatcher - prepare a watcher for an existing file
func NewWatcher(fileName string, log *logger.L) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		log.Errorf("file: %q  error: %s", fileName, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		log.Errorf("file: %q  error: %s", filePath, err)
		return nil, fault.ErrFileNotFound
	}

	w, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  w,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}, nil
}

// Change - receives once per burst of writes
func (w *Watcher) Change() <-chan struct{} {
	return w.change
}

// Start - begin delivering events
func (w *Watcher) Start() error {
	w.Lock()
	defer w.Unlock()

	if w.started {
		return fault.ErrAlreadyInitialised
	}

	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}
	w.started = true

	go w.run()
	return nil
}

// Close - stop watching; the change channel is not closed
func (w *Watcher) Close() error {
	w.Lock()
	defer w.Unlock()

	if w.started {
		close(w.done)
		w.started = false
	}
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if isChange(event) {
				w.notify()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

// drop the event if one is already pending
func (w *Watcher) notify() {
	select {
	case w.change <- struct{}{}:
	default:
		w.log.Debug("change already pending")
	}
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
