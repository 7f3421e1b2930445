// Package persistence stores random-walk results on disk.
package persistence

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
)

// WalkWriter appends random walks to a text file, one walk per line with
// nodes separated by single spaces.
type WalkWriter struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
	path string
}

// NewWalkWriter opens or creates the walk file at the given path.
func NewWalkWriter(path string) (*WalkWriter, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open walk file: %w", err)
	}

	return &WalkWriter{
		file: file,
		buf:  bufio.NewWriter(file),
		path: path,
	}, nil
}

// WriteWalk buffers one walk. An empty walk is written as an empty line.
func (w *WalkWriter) WriteWalk(nodes []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.buf.WriteString(strings.Join(nodes, " ")); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

// Flush forces the buffer contents to be written to the os file descriptor.
func (w *WalkWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Flush()
}

// Sync flushes and fsyncs the file.
func (w *WalkWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.buf.Flush(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close flushes pending walks and closes the file.
func (w *WalkWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.buf.Flush(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// Truncate discards every walk stored so far, including buffered ones.
func (w *WalkWriter) Truncate() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Reset(w.file)

	if err := w.file.Truncate(0); err != nil {
		return err
	}
	_, err := w.file.Seek(0, 0)
	return err
}

// Path returns the file path.
func (w *WalkWriter) Path() string {
	return w.path
}

// ReadWalks loads every walk stored at path.
func ReadWalks(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open walk file: %w", err)
	}
	defer f.Close()

	var walks [][]string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		walks = append(walks, strings.Fields(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read walk file: %w", err)
	}
	return walks, nil
}
