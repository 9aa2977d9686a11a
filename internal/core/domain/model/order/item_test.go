package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructmart/internal/core/domain/model/kernel"
)

func newPendingItem(t *testing.T) *Item {
	t.Helper()

	price, err := kernel.MoneyFromString("350.00")
	require.NoError(t, err)

	item, err := NewItem(kernel.NewUUID(), kernel.NewUUID(), "cement 50kg", "bag", price, 4)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create a pending item with the line total fixed", func(t *testing.T) {
		item := newPendingItem(t)

		assert.Equal(t, ItemStatusPending, item.Status())
		assert.Nil(t, item.AssignedMerchant())
		assert.Equal(t, "1400.00", item.TotalPrice().String())
		assert.Equal(t, "cement 50kg", item.ProductName())
		assert.Equal(t, "bag", item.Unit())
		assert.NoError(t, item.Validate())
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		price, err := kernel.MoneyFromString("10.00")
		require.NoError(t, err)

		for _, quantity := range []int{0, -1} {
			_, err = NewItem(kernel.NewUUID(), kernel.NewUUID(), "sand", "ton", price, quantity)
			assert.ErrorIs(t, err, ErrQuantityIsInvalid)
		}
	})

	t.Run("should reject missing identity and product name", func(t *testing.T) {
		price, err := kernel.MoneyFromString("10.00")
		require.NoError(t, err)

		_, err = NewItem(kernel.UUID{}, kernel.NewUUID(), "sand", "ton", price, 1)
		assert.Error(t, err)

		_, err = NewItem(kernel.NewUUID(), kernel.NewUUID(), "", "ton", price, 1)
		assert.Error(t, err)
	})

	t.Run("should fail validation for zero value items", func(t *testing.T) {
		var item Item
		assert.ErrorIs(t, item.Validate(), ErrItemIsNotConstructed)
	})
}

func TestRestoreItem(t *testing.T) {
	price, err := kernel.MoneyFromString("99.90")
	require.NoError(t, err)

	t.Run("should restore an assigned item with its merchant", func(t *testing.T) {
		merchantID := kernel.NewUUID()
		item, err := RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), "bricks", "pallet",
			price, 3, ItemStatusAssigned, &merchantID, nil,
		)
		require.NoError(t, err)

		assert.Equal(t, ItemStatusAssigned, item.Status())
		assert.True(t, item.IsOwnedBy(merchantID))
	})

	t.Run("should restore the rejection record", func(t *testing.T) {
		rejector := kernel.NewUUID()
		item, err := RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), "bricks", "pallet",
			price, 3, ItemStatusPending, nil, []kernel.UUID{rejector},
		)
		require.NoError(t, err)

		assert.True(t, item.HasRejected(rejector))
		assert.False(t, item.HasRejected(kernel.NewUUID()))
	})

	t.Run("should reject a pending item carrying a merchant", func(t *testing.T) {
		merchantID := kernel.NewUUID()
		_, err := RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), "bricks", "pallet",
			price, 3, ItemStatusPending, &merchantID, nil,
		)
		assert.Error(t, err)
	})

	t.Run("should reject an assigned item without a merchant", func(t *testing.T) {
		_, err := RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), "bricks", "pallet",
			price, 3, ItemStatusAssigned, nil, nil,
		)
		assert.Error(t, err)
	})
}

func TestItemAssign(t *testing.T) {
	t.Run("should assign a pending item to a merchant", func(t *testing.T) {
		item := newPendingItem(t)
		merchantID := kernel.NewUUID()

		require.NoError(t, item.Assign(merchantID))

		assert.Equal(t, ItemStatusAssigned, item.Status())
		assert.True(t, item.IsOwnedBy(merchantID))
	})

	t.Run("should conflict when the item is already held", func(t *testing.T) {
		item := newPendingItem(t)
		winner := kernel.NewUUID()
		loser := kernel.NewUUID()

		require.NoError(t, item.Assign(winner))
		err := item.Assign(loser)

		assert.ErrorIs(t, err, ErrItemAlreadyAssigned)
		assert.True(t, item.IsOwnedBy(winner), "winner must keep the item")
	})

	t.Run("should refuse a merchant that previously rejected the item", func(t *testing.T) {
		item := newPendingItem(t)
		merchantID := kernel.NewUUID()

		require.NoError(t, item.RecordRejection(merchantID))
		err := item.Assign(merchantID)

		assert.ErrorIs(t, err, ErrMerchantRejectedItem)
		assert.Equal(t, ItemStatusPending, item.Status())
	})
}

func TestItemRecordRejection(t *testing.T) {
	t.Run("should keep the item pending and claimable", func(t *testing.T) {
		item := newPendingItem(t)
		rejector := kernel.NewUUID()
		other := kernel.NewUUID()

		require.NoError(t, item.RecordRejection(rejector))
		assert.Equal(t, ItemStatusPending, item.Status())

		require.NoError(t, item.Assign(other))
		assert.True(t, item.IsOwnedBy(other))
	})

	t.Run("should refuse a duplicate rejection by the same merchant", func(t *testing.T) {
		item := newPendingItem(t)
		rejector := kernel.NewUUID()

		require.NoError(t, item.RecordRejection(rejector))
		assert.Error(t, item.RecordRejection(rejector))
		assert.Len(t, item.RejectedBy(), 1)
	})

	t.Run("should refuse rejecting a non-pending item", func(t *testing.T) {
		item := newPendingItem(t)
		require.NoError(t, item.Assign(kernel.NewUUID()))

		assert.Error(t, item.RecordRejection(kernel.NewUUID()))
	})
}

func TestItemAdvanceTo(t *testing.T) {
	t.Run("should walk the full fulfillment path", func(t *testing.T) {
		item := newPendingItem(t)
		require.NoError(t, item.Assign(kernel.NewUUID()))

		for _, target := range []ItemStatus{
			ItemStatusProcessing, ItemStatusShipped, ItemStatusDelivered,
		} {
			require.NoError(t, item.AdvanceTo(target))
			assert.Equal(t, target, item.Status())
		}
	})

	t.Run("should not mutate status on an invalid transition", func(t *testing.T) {
		item := newPendingItem(t)
		require.NoError(t, item.Assign(kernel.NewUUID()))

		err := item.AdvanceTo(ItemStatusDelivered)

		assert.Error(t, err)
		assert.Equal(t, ItemStatusAssigned, item.Status(), "status must not change")
	})

	t.Run("should refuse cancelling a shipped item", func(t *testing.T) {
		item := newPendingItem(t)
		require.NoError(t, item.Assign(kernel.NewUUID()))
		require.NoError(t, item.AdvanceTo(ItemStatusProcessing))
		require.NoError(t, item.AdvanceTo(ItemStatusShipped))

		assert.Error(t, item.AdvanceTo(ItemStatusCancelled))
		assert.Equal(t, ItemStatusShipped, item.Status())
	})
}

func TestItemMarkRejected(t *testing.T) {
	t.Run("should terminally reject a pending item", func(t *testing.T) {
		item := newPendingItem(t)

		require.NoError(t, item.MarkRejected())
		assert.Equal(t, ItemStatusRejected, item.Status())
		assert.True(t, item.Status().IsTerminal())
	})

	t.Run("should refuse rejecting an assigned item", func(t *testing.T) {
		item := newPendingItem(t)
		require.NoError(t, item.Assign(kernel.NewUUID()))

		assert.Error(t, item.MarkRejected())
	})
}
