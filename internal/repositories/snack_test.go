package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/snackops/snackledger/internal/models"
)

func TestSnackRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	actorID := seedUser(t, db, "stocker", models.RoleAdmin)

	writer := NewSnackWriteRepository(db, TxFromContext)
	reader := NewSnackReadRepository(db, TxFromContext)

	t.Run("insert and read back", func(t *testing.T) {
		expiry := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		snackID, err := writer.Insert(ctx, "Chips", 3, &expiry, actorID)
		assert.NoError(t, err)

		snack, err := reader.GetByID(ctx, snackID)
		assert.NoError(t, err)
		assert.NotNil(t, snack)
		assert.Equal(t, "Chips", snack.Name)
		assert.Equal(t, 3, snack.Quantity)
		assert.NotNil(t, snack.ExpireDate)

		byName, err := reader.GetByName(ctx, "Chips")
		assert.NoError(t, err)
		assert.NotNil(t, byName)
		assert.Equal(t, snackID, byName.SnackID)
	})

	t.Run("decrement to zero then guard refuses", func(t *testing.T) {
		snackID, err := writer.Insert(ctx, "Pretzels", 3, nil, actorID)
		assert.NoError(t, err)

		for want := 2; want >= 0; want-- {
			quantity, err := writer.AdjustQuantity(ctx, snackID, -1, actorID)
			assert.NoError(t, err)
			assert.Equal(t, want, quantity)
		}

		// The fourth take would go negative: the conditional update
		// matches nothing and the row is untouched.
		_, err = writer.AdjustQuantity(ctx, snackID, -1, actorID)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		snack, err := reader.GetByID(ctx, snackID)
		assert.NoError(t, err)
		assert.Equal(t, 0, snack.Quantity)
	})

	t.Run("adjust missing snack", func(t *testing.T) {
		_, err := writer.AdjustQuantity(ctx, uuid.New(), 1, actorID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("exists with name excludes self", func(t *testing.T) {
		snackID, err := writer.Insert(ctx, "Cookies", 1, nil, actorID)
		assert.NoError(t, err)

		exists, err := reader.ExistsWithName(ctx, "Cookies", nil)
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = reader.ExistsWithName(ctx, "Cookies", &snackID)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("list expiring window", func(t *testing.T) {
		today := time.Now().Truncate(24 * time.Hour)
		soon := today.AddDate(0, 0, 2)
		far := today.AddDate(0, 0, 30)

		_, err := writer.Insert(ctx, "Yogurt", 1, &soon, actorID)
		assert.NoError(t, err)
		_, err = writer.Insert(ctx, "Canned Corn", 1, &far, actorID)
		assert.NoError(t, err)

		expiring, err := reader.ListExpiring(ctx, today, today.AddDate(0, 0, 3))
		assert.NoError(t, err)

		names := make([]string, 0, len(expiring))
		for _, s := range expiring {
			names = append(names, s.Name)
		}
		assert.Contains(t, names, "Yogurt")
		assert.NotContains(t, names, "Canned Corn")
	})

	t.Run("update and delete", func(t *testing.T) {
		snackID, err := writer.Insert(ctx, "Gum", 5, nil, actorID)
		assert.NoError(t, err)

		assert.NoError(t, writer.Update(ctx, snackID, "Mint Gum", 7, nil, actorID))

		snack, err := reader.GetByID(ctx, snackID)
		assert.NoError(t, err)
		assert.Equal(t, "Mint Gum", snack.Name)
		assert.Equal(t, 7, snack.Quantity)

		assert.NoError(t, writer.Delete(ctx, snackID))

		snack, err = reader.GetByID(ctx, snackID)
		assert.NoError(t, err)
		assert.Nil(t, snack)

		assert.ErrorIs(t, writer.Delete(ctx, snackID), sql.ErrNoRows)
	})
}
