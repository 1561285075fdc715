package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps games in an embedded badger directory and lets badger
// expire them.
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadger(path string, log *slog.Logger) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	log.Info("Badger store opened", "path", path)
	return &BadgerStore{db: db, log: log}, nil
}

func (b *BadgerStore) Close() error {
	b.log.Info("Closing BadgerDB...")
	return b.db.Close()
}

func (b *BadgerStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	var record []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		record, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return record, true, nil
}

func (b *BadgerStore) Set(_ context.Context, key string, record []byte, ttl time.Duration) error {
	entry := badger.NewEntry([]byte(key), record)
	if ttl > 0 {
		entry = entry.WithTTL(ttl)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(entry)
	})
}

func (b *BadgerStore) Delete(_ context.Context, key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
