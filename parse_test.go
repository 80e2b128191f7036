package tachograph

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFileNonExistentReturnsFileError(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "does-not-exist.ddd"))
	if err == nil {
		t.Fatal("expected an error for a non-existent file")
	}
	if !os.IsNotExist(errUnwrapToPathError(err)) {
		t.Fatalf("expected a wrapped os.IsNotExist error, got %v", err)
	}
}

// errUnwrapToPathError walks err's wrap chain down to the underlying
// *os.PathError so the test can assert on the original file-system error.
func errUnwrapToPathError(err error) error {
	type unwrapper interface{ Unwrap() error }
	for {
		u, ok := err.(unwrapper)
		if !ok {
			return err
		}
		err = u.Unwrap()
	}
}
