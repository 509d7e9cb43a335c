package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T) *DBClient {
	t.Helper()
	db, err := NewSqliteClient(filepath.Join(t.TempDir(), "test.db"), zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(db.Stop)
	return db
}

func TestSeedAndKnownWallets(t *testing.T) {
	db := newTestClient(t)

	wallets, err := db.KnownWallets()
	require.NoError(t, err)
	require.Len(t, wallets, len(defaultKnownWallets))
	assert.Equal(t, "Cented", wallets[0].Name)

	// re-running migration must not duplicate or clobber rows
	require.NoError(t, db.seedWallets())
	again, err := db.KnownWallets()
	require.NoError(t, err)
	assert.Len(t, again, len(defaultKnownWallets))
}

func TestSeedKeepsOperatorEdits(t *testing.T) {
	db := newTestClient(t)

	w := defaultKnownWallets[0]
	w.ID = 0
	w.Name = "Renamed"
	w.Enabled = false
	require.NoError(t, db.UpsertWallet(&w))

	require.NoError(t, db.seedWallets())

	wallets, err := db.KnownWallets()
	require.NoError(t, err)
	for _, kw := range wallets {
		assert.NotEqual(t, w.Address, kw.Address, "disabled wallet should stay hidden")
	}
}

func TestSnapshotPrune(t *testing.T) {
	db := newTestClient(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, db.SaveSnapshot(&LeaderboardSnapshot{
			CreatedAt: time.Now(),
			Wallets:   i,
			Payload:   []byte(`[]`),
		}))
	}
	require.NoError(t, db.PruneSnapshots(2))

	last, err := db.LastSnapshot()
	require.NoError(t, err)
	assert.Equal(t, 4, last.Wallets)

	var count int64
	require.NoError(t, db.DB.Model(&LeaderboardSnapshot{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
