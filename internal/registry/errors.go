// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"errors"
	"fmt"
)

// Fatal run conditions. Callers match them with errors.Is; every one ends
// the run without writing a manifest.
var (
	// ErrMissingInputPath: a required input or output directory is absent.
	ErrMissingInputPath = errors.New("input path missing")
	// ErrMissingInputFile: the registry document is absent.
	ErrMissingInputFile = errors.New("registry file missing")
	// ErrFileOpen: the registry is unreadable or an output is unwritable.
	ErrFileOpen = errors.New("file open failure")
	// ErrFileRead: the registry opened but a pass could not read it to the
	// end. It matches ErrFileOpen.
	ErrFileRead = fmt.Errorf("%w: read failure", ErrFileOpen)
	// ErrEmptyResult: no extension survived classification.
	ErrEmptyResult = errors.New("no extensions found")
)
