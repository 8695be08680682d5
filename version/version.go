package version

import (
	gover "github.com/hashicorp/go-version"

	"github.com/bytom/folio/errors"
)

var (
	// The full version string
	Version = "0.3.1"
	// GitCommit is set with --ldflags "-X github.com/bytom/folio/version.GitCommit=$(git rev-parse HEAD)"
	GitCommit string

	// Layout is the version of the packed record layout the code generator
	// emits. Any change to a field's order, width or tag is a new major
	// version.
	Layout = "1.0.0"
)

// ErrIncompatibleLayout is returned when a consumer asks for a record layout
// this compiler cannot produce.
var ErrIncompatibleLayout = errors.New("incompatible record layout")

const revisionLen = 8

func init() {
	if len(GitCommit) >= revisionLen {
		Version += "+" + GitCommit[:revisionLen]
	}
}

// CompatibleWith checks whether a virtual machine expecting records of the
// given layout version can execute what this compiler emits.
// RULES:
// | emitted |          expected         |
// |    -    |             -             |
// |  1.0.0  | same major, minor <= ours |
func CompatibleWith(layout string) (bool, error) {
	emitted, err := gover.NewVersion(Layout)
	if err != nil {
		return false, err
	}
	expected, err := gover.NewVersion(layout)
	if err != nil {
		return false, errors.WithDetailf(ErrIncompatibleLayout, "layout %q is not a version: %v", layout, err)
	}

	e, x := emitted.Segments(), expected.Segments()
	return e[0] == x[0] && x[1] <= e[1], nil
}

// CheckLayout returns ErrIncompatibleLayout unless CompatibleWith(layout).
func CheckLayout(layout string) error {
	ok, err := CompatibleWith(layout)
	if err != nil {
		return err
	}
	if !ok {
		return errors.WithDetailf(ErrIncompatibleLayout, "compiler emits layout %s, %s requested", Layout, layout)
	}
	return nil
}
