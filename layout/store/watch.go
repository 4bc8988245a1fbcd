// This file is part of Controlmapper.
//
// Controlmapper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Controlmapper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Controlmapper.  If not, see <https://www.gnu.org/licenses/>.

package store

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/controlmapper/curated"
	"github.com/jetsetilly/controlmapper/layout"
	"github.com/jetsetilly/controlmapper/logger"
)

// Change is sent by Watch() when a layout file has changed on disk.
type Change struct {
	Entry  Entry
	Layout *layout.Layout
}

// the number of changes that can be waiting on the channel returned by
// Watch()
const changeQueueLen = 8

// Watch the store directory for changes to layout files. Every changed file
// that belongs to an entry in the list is reloaded and sent on the returned
// channel. Files that can not be loaded are logged and ignored.
//
// The channel is closed when the context is cancelled.
func (s *Store) Watch(ctx context.Context) (<-chan Change, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}

	if err := w.Add(s.dir); err != nil {
		w.Close()
		return nil, curated.Errorf(StoreError, err)
	}

	ch := make(chan Change, changeQueueLen)

	go func() {
		defer close(ch)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if filepath.Ext(ev.Name) != layoutExt {
					continue
				}

				e, ok := s.entryForFile(filepath.Base(ev.Name))
				if !ok {
					continue
				}

				l, err := s.readLayout(e)
				if err != nil {
					logger.Logf(logger.Allow, "store", "reloading '%s': %v", e.Name, err)
					continue
				}

				select {
				case ch <- Change{Entry: e, Layout: l}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Log(logger.Allow, "store", err)
			}
		}
	}()

	return ch, nil
}
