// Package store keeps named FEN slots in a badger database.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	petname "github.com/dustinkirkland/golang-petname"

	"github.com/daystram/chessfml/board"
)

const keyPrefix = "slot/"

var ErrSlotNotFound = errors.New("slot not found")

type slot struct {
	FEN     string    `json:"fen"`
	SavedAt time.Time `json:"saved_at"`
}

type config struct {
	inMemory bool
}

type Option func(*config)

// WithInMemory keeps the database in memory; dir is ignored.
func WithInMemory() Option {
	return func(cfg *config) {
		cfg.inMemory = true
	}
}

type Store struct {
	db *badger.DB
}

func Open(dir string, opts ...Option) (*Store, error) {
	cfg := &config{}
	for _, f := range opts {
		f(cfg)
	}

	dbOpts := badger.DefaultOptions(dir)
	if cfg.inMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true)
	}
	dbOpts.Logger = nil

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save validates fen and writes it under name, replacing any previous slot.
// An empty name is replaced by a generated one, which is returned.
func (s *Store) Save(name, fen string) (string, error) {
	if err := board.ParseFEN(fen, &board.Board{}, &board.GameState{}); err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = petname.Generate(2, "-")
	}

	data, err := json.Marshal(slot{FEN: fen, SavedAt: time.Now()})
	if err != nil {
		return "", err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+name), data)
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) Load(name string) (string, error) {
	var sl slot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %q", ErrSlotNotFound, name)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sl)
		})
	})
	if err != nil {
		return "", err
	}
	return sl.FEN, nil
}

// List returns the slot names in lexical order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Delete(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(keyPrefix + name)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %q", ErrSlotNotFound, name)
			}
			return err
		}
		return txn.Delete(key)
	})
}
