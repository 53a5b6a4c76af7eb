// Package clipboard copies message text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard not supported on this system")

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard used by tests and headless runs.
type Memory struct {
	mu   sync.Mutex
	text string
	// Err, when set, is returned by every write.
	Err error
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

// Text returns the last text written.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Copy writes text through w.
func Copy(w Writer, text string) error {
	if w == nil {
		return ErrUnsupported
	}
	if err := w.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
