package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructmart/internal/core/domain/model/kernel"
)

func itemsWithStatuses(t *testing.T, statuses ...ItemStatus) []*Item {
	t.Helper()

	price, err := kernel.MoneyFromString("50.00")
	require.NoError(t, err)

	items := make([]*Item, 0, len(statuses))
	for _, status := range statuses {
		var merchantID *kernel.UUID
		if status != ItemStatusPending && status != ItemStatusRejected {
			id := kernel.NewUUID()
			merchantID = &id
		}

		item, err := RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), "cement 50kg", "bag",
			price, 2, status, merchantID, nil,
		)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func TestDeriveOrderStatus(t *testing.T) {
	t.Run("should fail on an empty item list", func(t *testing.T) {
		_, err := DeriveOrderStatus(nil)
		assert.Error(t, err)
	})

	t.Run("should be pending when all items are pending", func(t *testing.T) {
		status, err := DeriveOrderStatus(itemsWithStatuses(t,
			ItemStatusPending, ItemStatusPending))
		require.NoError(t, err)
		assert.Equal(t, OrderStatusPending, status)
	})

	t.Run("should be processing when all active items are claimed", func(t *testing.T) {
		cases := [][]ItemStatus{
			{ItemStatusAssigned, ItemStatusAssigned},
			{ItemStatusProcessing, ItemStatusProcessing},
			{ItemStatusAssigned, ItemStatusProcessing},
		}

		for _, statuses := range cases {
			status, err := DeriveOrderStatus(itemsWithStatuses(t, statuses...))
			require.NoError(t, err)
			assert.Equal(t, OrderStatusProcessing, status)
		}
	})

	t.Run("should be shipped when every active item has shipped", func(t *testing.T) {
		status, err := DeriveOrderStatus(itemsWithStatuses(t,
			ItemStatusShipped, ItemStatusShipped))
		require.NoError(t, err)
		assert.Equal(t, OrderStatusShipped, status)
	})

	t.Run("should be delivered when all items are terminal and one delivered", func(t *testing.T) {
		cases := [][]ItemStatus{
			{ItemStatusDelivered},
			{ItemStatusDelivered, ItemStatusDelivered},
			{ItemStatusDelivered, ItemStatusCancelled},
			{ItemStatusDelivered, ItemStatusRejected},
		}

		for _, statuses := range cases {
			status, err := DeriveOrderStatus(itemsWithStatuses(t, statuses...))
			require.NoError(t, err)
			assert.Equal(t, OrderStatusDelivered, status)
		}
	})

	t.Run("should be cancelled when every item is cancelled or rejected", func(t *testing.T) {
		cases := [][]ItemStatus{
			{ItemStatusCancelled},
			{ItemStatusRejected},
			{ItemStatusCancelled, ItemStatusRejected},
		}

		for _, statuses := range cases {
			status, err := DeriveOrderStatus(itemsWithStatuses(t, statuses...))
			require.NoError(t, err)
			assert.Equal(t, OrderStatusCancelled, status)
		}
	})

	t.Run("should be partial for mixed item statuses", func(t *testing.T) {
		cases := [][]ItemStatus{
			{ItemStatusPending, ItemStatusAssigned},
			{ItemStatusPending, ItemStatusShipped},
			{ItemStatusProcessing, ItemStatusShipped},
			{ItemStatusShipped, ItemStatusDelivered},
			{ItemStatusAssigned, ItemStatusCancelled},
			{ItemStatusPending, ItemStatusDelivered},
		}

		for _, statuses := range cases {
			status, err := DeriveOrderStatus(itemsWithStatuses(t, statuses...))
			require.NoError(t, err)
			assert.Equal(t, OrderStatusPartial, status, "%v", statuses)
		}
	})

	t.Run("should stay deterministic regardless of item order", func(t *testing.T) {
		forward := itemsWithStatuses(t, ItemStatusPending, ItemStatusShipped, ItemStatusDelivered)
		backward := itemsWithStatuses(t, ItemStatusDelivered, ItemStatusShipped, ItemStatusPending)

		a, err := DeriveOrderStatus(forward)
		require.NoError(t, err)
		b, err := DeriveOrderStatus(backward)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})
}
