package profile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refTime = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "focuswatch.db")

	s, err := Open(path)
	require.NoError(t, err)

	s.now = func() time.Time {
		return refTime
	}

	return s, path
}

func TestLoadDefaultsToFreeTier(t *testing.T) {
	s, _ := openTestStore(t)
	defer s.Close()

	p, err := s.Load()
	require.NoError(t, err)

	assert.Equal(t, Profile{}, p)
	assert.Equal(t, "free", p.Tier(refTime))
}

func TestSaveAndLoad(t *testing.T) {
	s, path := openTestStore(t)

	until := refTime.Add(48 * time.Hour)

	require.NoError(t, s.Save(Profile{Premium: true, PremiumUntil: &until}))
	require.NoError(t, s.Close())

	s, err := Open(path)
	require.NoError(t, err)

	defer s.Close()

	p, err := s.Load()
	require.NoError(t, err)

	assert.True(t, p.Premium)
	assert.True(t, p.UpdatedAt.Equal(refTime))
	require.NotNil(t, p.PremiumUntil)
	assert.True(t, p.PremiumUntil.Equal(until))
}

func TestIsPremium(t *testing.T) {
	past := refTime.Add(-time.Minute)
	future := refTime.Add(time.Minute)

	testCases := []struct {
		name    string
		profile Profile
		want    bool
	}{
		{name: "free", profile: Profile{}, want: false},
		{name: "premium without expiry", profile: Profile{Premium: true}, want: true},
		{
			name:    "premium before expiry",
			profile: Profile{Premium: true, PremiumUntil: &future},
			want:    true,
		},
		{
			name:    "premium after expiry",
			profile: Profile{Premium: true, PremiumUntil: &past},
			want:    false,
		},
		{
			name:    "expiry on a free profile",
			profile: Profile{PremiumUntil: &future},
			want:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.profile.IsPremium(refTime))
		})
	}
}

func TestSecondOpenReportsRunningInstance(t *testing.T) {
	s, path := openTestStore(t)

	locked, err := Locked(path)
	require.NoError(t, err)
	assert.True(t, locked)

	_, err = Open(path)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, s.Close())

	locked, err = Locked(path)
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestOpenTwiceFailsWithRunningInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focuswatch.db")

	first, err := Open(path)
	require.NoError(t, err)

	defer first.Close()

	second, err := Open(path)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestLockedDoesNotCreateDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focuswatch.db")

	locked, err := Locked(path)
	require.NoError(t, err)
	assert.False(t, locked)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseExpiry(t *testing.T) {
	got, err := ParseExpiry("2030-01-02", refTime)
	require.NoError(t, err)
	assert.Equal(t, 2030, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 2, got.Day())

	_, err = ParseExpiry("2001-01-01", refTime)
	assert.ErrorIs(t, err, errExpiryInPast)

	_, err = ParseExpiry("not a date at all", refTime)
	assert.ErrorIs(t, err, errInvalidExpiry)
}
