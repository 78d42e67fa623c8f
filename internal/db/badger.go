package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
)

// OpenBadger opens the local quote database under dir, creating the
// directory if needed. Badger's own chatty logger is disabled; callers get
// errors instead.
func OpenBadger(dir string) (*badger.DB, error) {
	path := filepath.Join(dir, "quotes")
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return db, nil
}
