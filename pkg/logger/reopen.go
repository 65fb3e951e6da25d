package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	_ FileSyncer = (*ReopenableWriteSyncer)(nil)
	_ FileSyncer = (*RotatingWriteSyncer)(nil)
)

// ReopenableWriteSyncer appends to a file that is reopened on Reload, so an
// external logrotate can move the old file away. Writes never observe a closed file.
type ReopenableWriteSyncer struct {
	path string
	mu   sync.RWMutex
	f    *os.File
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	ws := &ReopenableWriteSyncer{path: path}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *ReopenableWriteSyncer) Reload() error {
	f, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	old := ws.f
	ws.f = f
	ws.mu.Unlock()
	if old != nil {
		return old.Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (int, error) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	if ws.f == nil {
		return 0, os.ErrClosed
	}
	return ws.f.Write(p)
}

func (ws *ReopenableWriteSyncer) Sync() error {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	if ws.f == nil {
		return nil
	}
	return ws.f.Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.f == nil {
		return nil
	}
	err := ws.f.Close()
	ws.f = nil
	return err
}
