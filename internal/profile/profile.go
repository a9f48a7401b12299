// Package profile stores the local user's account tier.
package profile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
	bolt "go.etcd.io/bbolt"
)

const (
	lockTimeout      = 1 * time.Second
	lockCheckTimeout = 100 * time.Millisecond
)

var (
	profileBucket = []byte("profile")
	profileKey    = []byte("local")
)

// Profile is the account state consulted when a session starts.
type Profile struct {
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Premium      bool       `json:"premium"`
}

// IsPremium reports whether premium features apply at now. An expiry that
// has passed downgrades the profile to the free tier.
func (p Profile) IsPremium(now time.Time) bool {
	if !p.Premium {
		return false
	}

	if p.PremiumUntil != nil && !now.Before(*p.PremiumUntil) {
		return false
	}

	return true
}

// Tier is a display name for the tier in effect at now.
func (p Profile) Tier(now time.Time) string {
	if p.IsPremium(now) {
		return "premium"
	}

	return "free"
}

// Store is a bbolt-backed profile store. Holding a Store open also marks
// this process as the running instance.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

func openDB(path string, timeout time.Duration) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(path, fileMode, &bolt.Options{Timeout: timeout})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyRunning
		}

		return nil, errOpenDB.Fmt(path).Wrap(err)
	}

	return db, nil
}

// Open opens or creates the profile database at path.
func Open(path string) (*Store, error) {
	db, err := openDB(path, lockTimeout)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists(profileBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errOpenDB.Fmt(path).Wrap(err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Locked reports whether another process currently holds the database at
// path. A missing database is never locked and is not created.
func Locked(path string) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	db, err := openDB(path, lockCheckTimeout)
	if err == nil {
		return false, db.Close()
	}

	if errors.Is(err, ErrAlreadyRunning) {
		return true, nil
	}

	return false, err
}

// Load returns the stored profile. A store that has never been written
// yields the free tier.
func (s *Store) Load() (Profile, error) {
	var p Profile

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(profileBucket).Get(profileKey)
		if len(b) == 0 {
			return nil
		}

		if err := json.Unmarshal(b, &p); err != nil {
			return errCorruptProfile.Wrap(err)
		}

		return nil
	})

	return p, err
}

// Save replaces the stored profile.
func (s *Store) Save(p Profile) error {
	p.UpdatedAt = s.now()

	value, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(profileBucket).Put(profileKey, value)
	})
}

// Close releases the database and its lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// ParseExpiry interprets input such as "in 30 days", "next friday" or
// "2026-12-31" relative to now. The result must lie in the future.
func ParseExpiry(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)

	cfg := &dps.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dps.Future,
	}

	dt, err := dps.Parse(cfg, input)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, errInvalidExpiry.Fmt(input)
	}

	if !dt.Time.After(now) {
		return time.Time{}, errExpiryInPast.Fmt(
			dt.Time.Format(time.RFC3339),
		)
	}

	return dt.Time, nil
}
