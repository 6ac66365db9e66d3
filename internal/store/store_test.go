package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_Record(t *testing.T) {
	s := openStore(t, t.TempDir())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rev, changed, err := s.Record(Check{
		Probe:      "delete-scratch",
		Operation:  "DeleteVolume",
		Permission: "granted",
		CheckedAt:  at,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)
	assert.False(t, changed, "first check is not a change")

	state, err := s.Latest("delete-scratch")
	require.NoError(t, err)
	assert.Equal(t, "DeleteVolume", state.Operation)
	assert.Equal(t, "granted", state.Permission)
	assert.Equal(t, int64(1), state.SinceRev)
	assert.Equal(t, int64(1), state.LastRev)
	assert.Equal(t, at, state.LastChecked)
	assert.Equal(t, 0, state.Changes)
}

func TestStore_RecordTransitions(t *testing.T) {
	s := openStore(t, t.TempDir())

	steps := []struct {
		permission  string
		wantChanged bool
	}{
		{"granted", false},
		{"granted", false},
		{"denied", true},
		{"denied", false},
		{"granted", true},
	}
	for i, step := range steps {
		rev, changed, err := s.Record(Check{Probe: "p", Operation: "StopInstances", Permission: step.permission})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), rev)
		assert.Equal(t, step.wantChanged, changed, "step %d", i)
	}

	state, err := s.Latest("p")
	require.NoError(t, err)
	assert.Equal(t, "granted", state.Permission)
	assert.Equal(t, int64(5), state.SinceRev)
	assert.Equal(t, 2, state.Changes)
	assert.Equal(t, int64(5), s.CurrentRevision())
}

func TestStore_RecordFailedChecks(t *testing.T) {
	tests := []struct {
		name        string
		steps       []Check
		wantChanged []bool
		want        ProbeState
	}{
		{
			name: "error between grants",
			steps: []Check{
				{Permission: "granted"},
				{Permission: "unknown", Error: "throttled"},
				{Permission: "granted"},
			},
			wantChanged: []bool{false, false, false},
			want:        ProbeState{Permission: "granted", SinceRev: 1, LastRev: 3},
		},
		{
			name: "error keeps last error",
			steps: []Check{
				{Permission: "denied"},
				{Permission: "unknown", Error: "connection reset"},
			},
			wantChanged: []bool{false, false},
			want:        ProbeState{Permission: "denied", Error: "connection reset", SinceRev: 1, LastRev: 2},
		},
		{
			name: "error then real change",
			steps: []Check{
				{Permission: "granted"},
				{Permission: "unknown", Error: "throttled"},
				{Permission: "denied"},
			},
			wantChanged: []bool{false, false, true},
			want:        ProbeState{Permission: "denied", SinceRev: 3, LastRev: 3, Changes: 1},
		},
		{
			name: "first check failed",
			steps: []Check{
				{Permission: "unknown", Error: "throttled"},
				{Permission: "granted"},
				{Permission: "denied"},
			},
			wantChanged: []bool{false, false, true},
			want:        ProbeState{Permission: "denied", SinceRev: 3, LastRev: 3, Changes: 1},
		},
		{
			name: "only failures",
			steps: []Check{
				{Permission: "unknown", Error: "throttled"},
				{Permission: "unknown", Error: "throttled"},
			},
			wantChanged: []bool{false, false},
			want:        ProbeState{Permission: "unknown", Error: "throttled", SinceRev: 0, LastRev: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			s, err := Open(dir)
			require.NoError(t, err)

			for i, c := range tt.steps {
				c.Probe = "p"
				c.Operation = "DeleteVolume"
				_, changed, err := s.Record(c)
				require.NoError(t, err)
				assert.Equal(t, tt.wantChanged[i], changed, "step %d", i)
			}

			assertState := func(s *Store) {
				state, err := s.Latest("p")
				require.NoError(t, err)
				assert.Equal(t, tt.want.Permission, state.Permission)
				assert.Equal(t, tt.want.Error, state.Error)
				assert.Equal(t, tt.want.SinceRev, state.SinceRev)
				assert.Equal(t, tt.want.LastRev, state.LastRev)
				assert.Equal(t, tt.want.Changes, state.Changes)
			}
			assertState(s)

			require.NoError(t, s.Close())
			assertState(openStore(t, dir))
		})
	}
}

func TestStore_RecordRequiresProbe(t *testing.T) {
	s := openStore(t, t.TempDir())

	_, _, err := s.Record(Check{Operation: "DeleteVolume"})
	require.Error(t, err)
	assert.Equal(t, int64(0), s.CurrentRevision())
}

func TestStore_LatestNotFound(t *testing.T) {
	s := openStore(t, t.TempDir())

	_, err := s.Latest("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_LatestReturnsCopy(t *testing.T) {
	s := openStore(t, t.TempDir())
	_, _, err := s.Record(Check{Probe: "p", Permission: "granted"})
	require.NoError(t, err)

	state, err := s.Latest("p")
	require.NoError(t, err)
	state.Permission = "tampered"

	again, err := s.Latest("p")
	require.NoError(t, err)
	assert.Equal(t, "granted", again.Permission)
}

func TestStore_StatesOrdered(t *testing.T) {
	s := openStore(t, t.TempDir())
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, _, err := s.Record(Check{Probe: name, Permission: "denied"})
		require.NoError(t, err)
	}

	var names []string
	for _, st := range s.States() {
		names = append(names, st.Probe)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestStore_History(t *testing.T) {
	s := openStore(t, t.TempDir())
	records := []Check{
		{Probe: "a", Permission: "granted"},
		{Probe: "b", Permission: "denied"},
		{Probe: "a", Permission: "unknown", Error: "throttled"},
		{Probe: "a:colon", Permission: "granted"},
	}
	for _, c := range records {
		_, _, err := s.Record(c)
		require.NoError(t, err)
	}

	all, err := s.History("", 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, int64(4), all[0].Revision, "newest first")
	assert.Equal(t, "a:colon", all[0].Probe)

	onlyA, err := s.History("a", 0)
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	assert.Equal(t, "throttled", onlyA[0].Error)
	assert.Equal(t, int64(1), onlyA[1].Revision)

	limited, err := s.History("", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, int64(3), limited[1].Revision)
}

func TestStore_ReopenRebuildsIndex(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	for _, perm := range []string{"granted", "denied"} {
		_, _, err := s.Record(Check{Probe: "p", Operation: "CreateVolume", Permission: perm})
		require.NoError(t, err)
	}
	require.NoError(t, s.Close())

	reopened := openStore(t, dir)
	assert.Equal(t, int64(2), reopened.CurrentRevision())
	assert.Equal(t, dir, reopened.Dir())
	assert.FileExists(t, filepath.Join(dir, FileName))

	state, err := reopened.Latest("p")
	require.NoError(t, err)
	assert.Equal(t, "denied", state.Permission)
	assert.Equal(t, int64(2), state.SinceRev)
	assert.Equal(t, 1, state.Changes)

	rev, _, err := reopened.Record(Check{Probe: "p", Permission: "denied"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), rev)
}

func TestStore_Compact(t *testing.T) {
	s := openStore(t, t.TempDir())

	_, _, err := s.Record(Check{Probe: "rare", Permission: "granted"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, _, err := s.Record(Check{Probe: "busy", Permission: "granted"})
		require.NoError(t, err)
	}

	deleted, err := s.Compact(2)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted, "revisions 2-4 of busy")

	history, err := s.History("", 0)
	require.NoError(t, err)
	var revs []int64
	for _, c := range history {
		revs = append(revs, c.Revision)
	}
	assert.Equal(t, []int64{6, 5, 1}, revs)

	deleted, err = s.Compact(100)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestOpen_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s := openStore(t, dir)
	assert.DirExists(t, dir)
	assert.Empty(t, s.States())
}

func TestCheckKey(t *testing.T) {
	key := makeCheckKey(42, "needs:colon")
	assert.Equal(t, "0000000000000042:needs:colon", string(key))

	rev, probe, err := parseCheckKey(key)
	require.NoError(t, err)
	assert.Equal(t, int64(42), rev)
	assert.Equal(t, "needs:colon", probe)

	_, _, err = parseCheckKey([]byte("nocolon"))
	require.Error(t, err)
	_, _, err = parseCheckKey([]byte("abc:p"))
	require.Error(t, err)
}
