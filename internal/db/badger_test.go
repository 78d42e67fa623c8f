package db

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
)

func TestOpenBadger(t *testing.T) {
	database, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	err = database.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("k"), []byte("v"))
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	err = database.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("k"))
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if string(val) != "v" {
			t.Errorf("expected v, got %s", val)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
}
