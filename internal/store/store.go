// Package store keeps the history of permission checks in a bbolt file,
// with an in-memory btree index of the latest state of each probe.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/btree"
	"go.etcd.io/bbolt"
)

// FileName is the database file created inside the state directory.
const FileName = "ec2model.db"

var (
	bucketChecks = []byte("checks")
	bucketMeta   = []byte("meta")

	keyRevision = []byte("current_revision")
)

// ErrNotFound is returned when a probe has never been recorded.
var ErrNotFound = errors.New("probe not found")

// Check is one recorded permission check.
type Check struct {
	Revision   int64     `json:"revision" yaml:"revision"`
	Probe      string    `json:"probe" yaml:"probe"`
	Operation  string    `json:"operation" yaml:"operation"`
	Permission string    `json:"permission" yaml:"permission"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at" yaml:"checked_at"`
}

// ProbeState is the latest known state of a probe.
type ProbeState struct {
	Probe      string `yaml:"probe"`
	Operation  string `yaml:"operation"`
	Permission string `yaml:"permission"`
	Error      string `yaml:"error,omitempty"`

	// SinceRev is the revision at which Permission was first observed,
	// 0 while every check of the probe has failed.
	SinceRev    int64     `yaml:"since_revision"`
	LastRev     int64     `yaml:"last_revision"`
	LastChecked time.Time `yaml:"last_checked"`

	// Changes counts permission transitions between successful checks.
	Changes int `yaml:"changes"`
}

// Store is a revisioned log of checks.
type Store struct {
	mu sync.RWMutex

	index *btree.BTreeG[*ProbeState]
	db    *bbolt.DB

	currentRev int64
	dir        string
}

// Open opens or creates the store in dir and rebuilds the index from the
// recorded checks.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := bbolt.Open(filepath.Join(dir, FileName), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketChecks, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}

	s := &Store{
		index: btree.NewG(32, func(a, b *ProbeState) bool {
			return a.Probe < b.Probe
		}),
		db:  db,
		dir: dir,
	}

	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the state directory.
func (s *Store) Dir() string {
	return s.dir
}

// Record appends c under a new revision and reports whether the probe's
// permission differs from its last successful check. The first successful
// check of a probe is not a change, and a failed check (non-empty Error)
// never is.
func (s *Store) Record(c Check) (rev int64, changed bool, err error) {
	if c.Probe == "" {
		return 0, false, errors.New("record check: probe name required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rev = s.currentRev + 1
	c.Revision = rev
	if c.CheckedAt.IsZero() {
		c.CheckedAt = time.Now().UTC()
	}

	value, err := json.Marshal(c)
	if err != nil {
		return 0, false, fmt.Errorf("encode check: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketChecks).Put(makeCheckKey(rev, c.Probe), value); err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keyRevision, []byte(strconv.FormatInt(rev, 10)))
	})
	if err != nil {
		return 0, false, fmt.Errorf("record check: %w", err)
	}

	s.currentRev = rev
	return rev, s.updateIndex(c), nil
}

// Latest returns a copy of the probe's latest state.
func (s *Store) Latest(probe string) (*ProbeState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, found := s.index.Get(&ProbeState{Probe: probe})
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, probe)
	}
	cp := *state
	return &cp, nil
}

// States returns the latest state of every probe, ordered by name.
func (s *Store) States() []ProbeState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make([]ProbeState, 0, s.index.Len())
	s.index.Ascend(func(state *ProbeState) bool {
		states = append(states, *state)
		return true
	})
	return states
}

// History returns recorded checks newest first. An empty probe matches
// every probe; a limit of zero or less returns all matches.
func (s *Store) History(probe string, limit int) ([]Check, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var checks []Check
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketChecks).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(checks) >= limit {
				return nil
			}
			_, name, err := parseCheckKey(k)
			if err != nil {
				return err
			}
			if probe != "" && name != probe {
				continue
			}
			var check Check
			if err := json.Unmarshal(v, &check); err != nil {
				return fmt.Errorf("decode check %s: %w", k, err)
			}
			checks = append(checks, check)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return checks, nil
}

// CurrentRevision returns the latest revision.
func (s *Store) CurrentRevision() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentRev
}

// Compact deletes checks older than the last keep revisions. The latest
// check of every probe is kept so the index survives a reopen.
func (s *Store) Compact(keep int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.currentRev - keep
	if cutoff <= 0 {
		return 0, nil
	}

	var deleted int
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChecks)
		c := bucket.Cursor()

		var toDelete [][]byte
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			rev, probe, err := parseCheckKey(k)
			if err != nil {
				return err
			}
			if rev > cutoff {
				break
			}
			if state, ok := s.index.Get(&ProbeState{Probe: probe}); ok && state.LastRev == rev {
				continue
			}
			toDelete = append(toDelete, append([]byte(nil), k...))
		}

		for _, key := range toDelete {
			if err := bucket.Delete(key); err != nil {
				return err
			}
		}
		deleted = len(toDelete)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("compact: %w", err)
	}
	return deleted, nil
}

// updateIndex folds c into the probe's state. A failed check says nothing
// about the permission: it only moves LastRev, LastChecked and Error. A
// probe whose checks have all failed has SinceRev 0.
func (s *Store) updateIndex(c Check) bool {
	failed := c.Error != ""

	existing, found := s.index.Get(&ProbeState{Probe: c.Probe})
	if !found {
		state := &ProbeState{
			Probe:       c.Probe,
			Operation:   c.Operation,
			Permission:  c.Permission,
			Error:       c.Error,
			LastRev:     c.Revision,
			LastChecked: c.CheckedAt,
		}
		if !failed {
			state.SinceRev = c.Revision
		}
		s.index.ReplaceOrInsert(state)
		return false
	}

	existing.Operation = c.Operation
	existing.Error = c.Error
	existing.LastRev = c.Revision
	existing.LastChecked = c.CheckedAt
	if failed {
		return false
	}

	if existing.SinceRev == 0 {
		existing.Permission = c.Permission
		existing.SinceRev = c.Revision
		return false
	}

	changed := existing.Permission != c.Permission
	if changed {
		existing.Permission = c.Permission
		existing.SinceRev = c.Revision
		existing.Changes++
	}
	return changed
}

func (s *Store) load() error {
	return s.db.View(func(tx *bbolt.Tx) error {
		if data := tx.Bucket(bucketMeta).Get(keyRevision); data != nil {
			rev, err := strconv.ParseInt(string(data), 10, 64)
			if err != nil {
				return fmt.Errorf("load revision: %w", err)
			}
			s.currentRev = rev
		}

		return tx.Bucket(bucketChecks).ForEach(func(k, v []byte) error {
			var check Check
			if err := json.Unmarshal(v, &check); err != nil {
				return fmt.Errorf("rebuild index: decode check %s: %w", k, err)
			}
			s.updateIndex(check)
			return nil
		})
	})
}

// Keys sort by revision: a zero-padded revision, a colon, then the probe.
func makeCheckKey(rev int64, probe string) []byte {
	return []byte(fmt.Sprintf("%016d:%s", rev, probe))
}

func parseCheckKey(key []byte) (int64, string, error) {
	revPart, probe, ok := strings.Cut(string(key), ":")
	if !ok {
		return 0, "", fmt.Errorf("malformed check key %q", key)
	}
	rev, err := strconv.ParseInt(revPart, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("malformed check key %q: %w", key, err)
	}
	return rev, probe, nil
}
