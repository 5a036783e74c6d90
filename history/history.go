// Package history persists evaluated expressions in a bbolt database.
package history

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	bolt "go.etcd.io/bbolt"
)

const bucketEntries = "entries"

// ErrNoSuchEntry is returned when looking up a sequence number that
// doesn't exist.
var ErrNoSuchEntry = errors.New("no such history entry")

// Entry is one evaluated expression and its result.
type Entry struct {
	Seq    int
	Input  string
	Result float64
}

func (e Entry) String() string {
	return fmt.Sprintf("%d\t%s = %s", e.Seq, e.Input, strconv.FormatFloat(e.Result, 'g', -1, 64))
}

// Store is a bbolt-backed history of evaluated expressions, keyed by a
// monotonic sequence number.
type Store struct {
	db *bolt.DB
}

// DefaultPath returns the default location of the history database.
func DefaultPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("user cache dir: %w", err)
	}
	return filepath.Join(cacheDir, "calc", "history.db"), nil
}

// Open opens (creating if needed) the history database at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %q: %w", filepath.Dir(path), err)
	}
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketEntries))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// NextSeq returns the sequence number the next Add will use.
func (s *Store) NextSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		seq = tx.Bucket([]byte(bucketEntries)).Sequence() + 1
		return nil
	})
	return int(seq), err
}

// Add appends an entry and returns its sequence number.
func (s *Store) Add(input string, result float64) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketEntries))
		var err error
		if seq, err = b.NextSequence(); err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), marshalEntry(input, result))
	})
	return int(seq), err
}

// Entry returns the entry with the given sequence number.
func (s *Store) Entry(seq int) (Entry, error) {
	var entry Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketEntries)).Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoSuchEntry
		}
		var err error
		entry, err = unmarshalEntry(uint64(seq), v)
		return err
	})
	return entry, err
}

// Entries returns all entries with from <= seq < upto, in order.
func (s *Store) Entries(from, upto int) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketEntries)).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			entry, err := unmarshalEntry(unmarshalSeq(k), v)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	return entries, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// Values are "<result>\x00<input>"; the input may contain anything but
// the result never contains a NUL.
func marshalEntry(input string, result float64) []byte {
	v := strconv.AppendFloat(nil, result, 'g', -1, 64)
	v = append(v, 0)
	return append(v, input...)
}

func unmarshalEntry(seq uint64, v []byte) (Entry, error) {
	i := bytes.IndexByte(v, 0)
	if i < 0 {
		return Entry{}, fmt.Errorf("corrupt history entry %d: %q", seq, v)
	}
	result, err := strconv.ParseFloat(string(v[:i]), 64)
	if err != nil {
		return Entry{}, fmt.Errorf("corrupt history entry %d: %w", seq, err)
	}
	return Entry{Seq: int(seq), Input: string(v[i+1:]), Result: result}, nil
}
