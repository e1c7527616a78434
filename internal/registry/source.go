// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single registry line.
const maxLineSize = 1 << 20

// Source is a registry document that can be read from the start any
// number of times. Each Open begins an independent pass.
type Source interface {
	Open() (io.ReadCloser, error)
}

// FileSource reads the registry from a file on disk.
type FileSource struct {
	Path string
}

// Open opens the file for a new pass.
func (f FileSource) Open() (io.ReadCloser, error) {
	rc, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s for reading: %v", ErrFileOpen, f.Path, err)
	}
	return rc, nil
}

// BytesSource serves an in-memory registry document.
type BytesSource []byte

// Open returns a reader positioned at the start of the document.
func (b BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}

// eachLine opens src and calls fn for every line until fn returns false or
// the input ends. Line terminators are not included.
func eachLine(src Source, fn func(line string) bool) error {
	rc, err := src.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if !fn(sc.Text()) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: reading registry: %v", ErrFileRead, err)
	}
	return nil
}
