package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/snackops/snackledger/internal/models"
)

func TestHistoryRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	actorID := seedUser(t, db, "alice", models.RoleMember)

	snackWriter := NewSnackWriteRepository(db, TxFromContext)
	writer := NewHistoryWriteRepository(db, TxFromContext)
	reader := NewHistoryReadRepository(db, TxFromContext)

	snackID, err := snackWriter.Insert(ctx, "Chips", 3, nil, actorID)
	assert.NoError(t, err)

	one := 1
	assert.NoError(t, writer.Append(ctx, &snackID, actorID, models.ActionDecrease, &one, nil))

	memo := "rejected request: Cola"
	five := 5
	assert.NoError(t, writer.Append(ctx, nil, actorID, models.ActionRejected, &five, &memo))

	t.Run("list joins names", func(t *testing.T) {
		rows, err := reader.List(ctx, nil, nil)
		assert.NoError(t, err)
		assert.Len(t, rows, 2)

		// Newest first: the rejection came last.
		assert.Equal(t, models.ActionRejected, rows[0].Action)
		assert.Nil(t, rows[0].SnackName)
		assert.NotNil(t, rows[0].Memo)

		assert.Equal(t, models.ActionDecrease, rows[1].Action)
		assert.NotNil(t, rows[1].SnackName)
		assert.Equal(t, "Chips", *rows[1].SnackName)
		assert.NotNil(t, rows[1].Username)
		assert.Equal(t, "alice", *rows[1].Username)
	})

	t.Run("rows survive snack deletion", func(t *testing.T) {
		assert.NoError(t, snackWriter.Delete(ctx, snackID))

		rows, err := reader.List(ctx, nil, nil)
		assert.NoError(t, err)
		assert.Len(t, rows, 2)

		// The decrease row is still there, its snack name now null.
		assert.Nil(t, rows[1].SnackName)
	})

	t.Run("window filters", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		rows, err := reader.List(ctx, &past, nil)
		assert.NoError(t, err)
		assert.Len(t, rows, 2)

		future := time.Now().Add(time.Hour)
		rows, err = reader.List(ctx, &future, nil)
		assert.NoError(t, err)
		assert.Empty(t, rows)

		rows, err = reader.List(ctx, nil, &past)
		assert.NoError(t, err)
		assert.Empty(t, rows)
	})
}
