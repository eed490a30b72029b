// Package scaffold prepares the working directory the testnet launch scripts
// run from.
package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pushchain/push-testnet/testnet/types"
)

const dirMode = 0o755

var errNotDir = errors.New("not a directory")

// EnsureHome makes sure root/name exists and changes the process working
// directory to it. root must already exist. An existing root/name is reused
// as is. Returns the absolute path of the home.
func EnsureHome(root, name string) (string, error) {
	home, err := Prepare(root, name)
	if err != nil {
		return "", err
	}
	if err := os.Chdir(home); err != nil {
		return "", &types.ScaffoldError{Path: home, Err: err}
	}
	return home, nil
}

// Prepare is EnsureHome without the change of working directory.
func Prepare(root, name string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &types.ScaffoldError{Path: root, Err: err}
	}
	if err := requireDir(absRoot); err != nil {
		return "", &types.ScaffoldError{Path: absRoot, Err: err}
	}

	home := filepath.Join(absRoot, name)
	err = os.Mkdir(home, dirMode)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrExist):
		if err := requireDir(home); err != nil {
			return "", &types.ScaffoldError{Path: home, Err: err}
		}
	default:
		return "", &types.ScaffoldError{Path: home, Err: err}
	}
	return home, nil
}

func requireDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return errNotDir
	}
	return nil
}
