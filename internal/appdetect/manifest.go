package appdetect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ParseError reports a manifest file that exists but could not be read or
// parsed. It is recoverable: the caller treats the manifest as absent for
// classification and records the error as a Warning.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// readManifest loads root/name and unmarshals it into v.
//
// A missing file is not an error; the manifest is reported absent. A file that
// exists but does not parse yields a *ParseError. The raw contents are
// returned so callers can make additional loose probes without re-reading.
func readManifest(root, name string, unmarshal func([]byte, any) error, v any) ([]byte, bool, error) {
	contents, err := os.ReadFile(filepath.Join(root, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &ParseError{Filename: name, Err: err}
	}

	if err := unmarshal(contents, v); err != nil {
		return nil, false, &ParseError{Filename: name, Err: err}
	}

	return contents, true, nil
}

// warn downgrades a manifest error to a Warning on the project. Only
// *ParseError values are expected here.
func warn(p *Project, err error) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		p.Warnings = append(p.Warnings, Warning{File: parseErr.Filename, Detail: parseErr.Err.Error()})
		return
	}

	p.Warnings = append(p.Warnings, Warning{Detail: err.Error()})
}
