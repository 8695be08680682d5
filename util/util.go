package util

import (
	"io/ioutil"

	"github.com/bytom/folio/config"
	"github.com/bytom/folio/errors"
)

const (
	// Success indicates the command finished without error.
	Success = iota
	// ErrLocalExe indicates error occurs before the compilation starts,
	// e.g., bad arguments or an unreadable config.
	ErrLocalExe
	// ErrCompile indicates the source does not compile.
	ErrCompile
	// ErrLocalParse indicates error occurs when rendering the output.
	ErrLocalParse
)

// ReadSource reads the folio file at path, expanding a leading ~.
func ReadSource(path string) (string, error) {
	data, err := ioutil.ReadFile(config.ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(data), nil
}
