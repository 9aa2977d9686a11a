package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructmart/internal/core/domain/model/kernel"
)

func testAddress(t *testing.T) Address {
	t.Helper()
	address, err := NewAddress("12 Quarry Road", "Pune", "411001", "+91-9800000000")
	require.NoError(t, err)
	return address
}

func testTotals(t *testing.T, subtotal, tax, delivery, platform, total string) Totals {
	t.Helper()

	parse := func(s string) kernel.Money {
		m, err := kernel.MoneyFromString(s)
		require.NoError(t, err)
		return m
	}

	totals, err := NewTotals(parse(subtotal), parse(tax), parse(delivery), parse(platform), parse(total))
	require.NoError(t, err)
	return totals
}

func newTestOrder(t *testing.T, itemCount int) (*Order, kernel.UUID) {
	t.Helper()

	price, err := kernel.MoneyFromString("100.00")
	require.NoError(t, err)

	items := make([]*Item, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		item, err := NewItem(kernel.NewUUID(), kernel.NewUUID(), "cement 50kg", "bag", price, 1)
		require.NoError(t, err)
		items = append(items, item)
	}

	customerID := kernel.NewUUID()
	totals := testTotals(t, "100.00", "18.00", "50.00", "5.00", "173.00")
	if itemCount == 2 {
		totals = testTotals(t, "200.00", "36.00", "50.00", "5.00", "291.00")
	}

	o, err := NewOrder(
		kernel.NewUUID(), "CM-TEST000001", customerID, testAddress(t),
		items, totals, PaymentCashOnDelivery, "gate 2, ask for foreman", "",
	)
	require.NoError(t, err)
	return o, customerID
}

func merchantActor() Actor {
	return Actor{ID: kernel.NewUUID(), Role: ActorRoleMerchant}
}

func TestNewTotals(t *testing.T) {
	t.Run("should accept a total that is exactly the sum of its parts", func(t *testing.T) {
		totals := testTotals(t, "100.00", "18.00", "50.00", "5.00", "173.00")
		assert.Equal(t, "173.00", totals.TotalAmount.String())
	})

	t.Run("should reject a drifting total", func(t *testing.T) {
		parse := func(s string) kernel.Money {
			m, err := kernel.MoneyFromString(s)
			require.NoError(t, err)
			return m
		}

		_, err := NewTotals(
			parse("100.00"), parse("18.00"), parse("50.00"), parse("5.00"), parse("173.01"))
		assert.ErrorIs(t, err, ErrTotalsMismatch)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order with creation audit entries", func(t *testing.T) {
		o, customerID := newTestOrder(t, 2)

		status, err := o.Status()
		require.NoError(t, err)
		assert.Equal(t, OrderStatusPending, status)

		require.Len(t, o.Lifecycle(), 1)
		assert.Equal(t, EventOrderCreated, o.Lifecycle()[0].EventType)
		assert.Equal(t, customerID, o.Lifecycle()[0].TriggeredBy.ID)

		require.Len(t, o.StatusHistory(), 2)
		for _, entry := range o.StatusHistory() {
			assert.Equal(t, ItemStatusPending, entry.Status)
		}
	})

	t.Run("should reject an order without items", func(t *testing.T) {
		totals := testTotals(t, "0.00", "0.00", "0.00", "0.00", "0.00")
		_, err := NewOrder(
			kernel.NewUUID(), "CM-TEST000002", kernel.NewUUID(), testAddress(t),
			nil, totals, PaymentOnline, "", "",
		)
		assert.ErrorIs(t, err, ErrItemsAreRequired)
	})

	t.Run("should fail validation for zero value orders", func(t *testing.T) {
		var o Order
		assert.ErrorIs(t, o.Validate(), ErrOrderIsNotConstructed)
	})
}

func TestOrderAssignItem(t *testing.T) {
	t.Run("should assign a pending item and append one audit pair", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		item := o.Items()[0]
		merchant := merchantActor()

		historyBefore := len(o.StatusHistory())
		lifecycleBefore := len(o.Lifecycle())

		require.NoError(t, o.AssignItem(item.ID(), merchant))

		assert.Equal(t, ItemStatusAssigned, item.Status())
		assert.True(t, item.IsOwnedBy(merchant.ID))
		assert.Len(t, o.StatusHistory(), historyBefore+1)
		assert.Len(t, o.Lifecycle(), lifecycleBefore+1)
		assert.Equal(t, EventItemAssigned, o.Lifecycle()[len(o.Lifecycle())-1].EventType)
	})

	t.Run("should let exactly one merchant win a claim race", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		item := o.Items()[0]
		winner := merchantActor()
		loser := merchantActor()

		require.NoError(t, o.AssignItem(item.ID(), winner))
		err := o.AssignItem(item.ID(), loser)

		assert.ErrorIs(t, err, ErrItemAlreadyAssigned)
		assert.True(t, item.IsOwnedBy(winner.ID))
	})

	t.Run("should append nothing when the claim fails", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		item := o.Items()[0]
		require.NoError(t, o.AssignItem(item.ID(), merchantActor()))

		historyBefore := len(o.StatusHistory())
		lifecycleBefore := len(o.Lifecycle())

		require.Error(t, o.AssignItem(item.ID(), merchantActor()))

		assert.Len(t, o.StatusHistory(), historyBefore)
		assert.Len(t, o.Lifecycle(), lifecycleBefore)
	})

	t.Run("should refuse customers claiming items", func(t *testing.T) {
		o, customerID := newTestOrder(t, 1)
		customer := Actor{ID: customerID, Role: ActorRoleCustomer}

		err := o.AssignItem(o.Items()[0].ID(), customer)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("should fail for an unknown item", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		assert.Error(t, o.AssignItem(kernel.NewUUID(), merchantActor()))
	})
}

func TestOrderRejectItem(t *testing.T) {
	t.Run("should record the rejection and keep the item claimable", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		item := o.Items()[0]
		rejector := merchantActor()
		other := merchantActor()

		require.NoError(t, o.RejectItem(item.ID(), rejector))

		assert.Equal(t, ItemStatusPending, item.Status())
		assert.Equal(t, EventItemRejected, o.Lifecycle()[len(o.Lifecycle())-1].EventType)

		require.NoError(t, o.AssignItem(item.ID(), other))
		assert.True(t, item.IsOwnedBy(other.ID))
	})

	t.Run("should not add a status history entry", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		before := len(o.StatusHistory())

		require.NoError(t, o.RejectItem(o.Items()[0].ID(), merchantActor()))

		assert.Len(t, o.StatusHistory(), before, "rejection does not change status")
	})
}

func TestOrderMarkItemRejected(t *testing.T) {
	t.Run("should let an admin terminally reject a pending item", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		admin := Actor{ID: kernel.NewUUID(), Role: ActorRoleAdmin}

		require.NoError(t, o.MarkItemRejected(o.Items()[0].ID(), admin))
		assert.Equal(t, ItemStatusRejected, o.Items()[0].Status())
	})

	t.Run("should refuse non-admin actors", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)

		err := o.MarkItemRejected(o.Items()[0].ID(), merchantActor())
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})
}

func TestOrderAdvanceItem(t *testing.T) {
	t.Run("should let the owning merchant walk the fulfillment path", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		item := o.Items()[0]
		merchant := merchantActor()
		require.NoError(t, o.AssignItem(item.ID(), merchant))

		for _, target := range []ItemStatus{
			ItemStatusProcessing, ItemStatusShipped, ItemStatusDelivered,
		} {
			require.NoError(t, o.AdvanceItem(item.ID(), target, "", merchant))
			assert.Equal(t, target, item.Status())
		}

		status, err := o.Status()
		require.NoError(t, err)
		assert.Equal(t, OrderStatusDelivered, status)
	})

	t.Run("should refuse a merchant that does not hold the item", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		item := o.Items()[0]
		require.NoError(t, o.AssignItem(item.ID(), merchantActor()))

		err := o.AdvanceItem(item.ID(), ItemStatusProcessing, "", merchantActor())

		assert.ErrorIs(t, err, ErrNotItemOwner)
		assert.Equal(t, ItemStatusAssigned, item.Status())
	})

	t.Run("should let the customer cancel before shipping", func(t *testing.T) {
		o, customerID := newTestOrder(t, 1)
		item := o.Items()[0]
		customer := Actor{ID: customerID, Role: ActorRoleCustomer}
		require.NoError(t, o.AssignItem(item.ID(), merchantActor()))

		require.NoError(t, o.AdvanceItem(item.ID(), ItemStatusCancelled, "site closed", customer))

		assert.Equal(t, ItemStatusCancelled, item.Status())
		assert.Equal(t, EventItemCancelled, o.Lifecycle()[len(o.Lifecycle())-1].EventType)

		last := o.StatusHistory()[len(o.StatusHistory())-1]
		assert.Equal(t, "site closed", last.Note)
	})

	t.Run("should refuse the customer cancelling a shipped item", func(t *testing.T) {
		o, customerID := newTestOrder(t, 1)
		item := o.Items()[0]
		merchant := merchantActor()
		customer := Actor{ID: customerID, Role: ActorRoleCustomer}
		require.NoError(t, o.AssignItem(item.ID(), merchant))
		require.NoError(t, o.AdvanceItem(item.ID(), ItemStatusProcessing, "", merchant))
		require.NoError(t, o.AdvanceItem(item.ID(), ItemStatusShipped, "", merchant))

		err := o.AdvanceItem(item.ID(), ItemStatusCancelled, "", customer)

		assert.Error(t, err)
		assert.Equal(t, ItemStatusShipped, item.Status())
	})

	t.Run("should refuse a foreign customer", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		item := o.Items()[0]
		require.NoError(t, o.AssignItem(item.ID(), merchantActor()))
		stranger := Actor{ID: kernel.NewUUID(), Role: ActorRoleCustomer}

		err := o.AdvanceItem(item.ID(), ItemStatusCancelled, "", stranger)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("should let an admin advance any item", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		item := o.Items()[0]
		admin := Actor{ID: kernel.NewUUID(), Role: ActorRoleAdmin}
		require.NoError(t, o.AssignItem(item.ID(), merchantActor()))

		require.NoError(t, o.AdvanceItem(item.ID(), ItemStatusProcessing, "", admin))
		assert.Equal(t, ItemStatusProcessing, item.Status())
	})

	t.Run("should append nothing on an invalid transition", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		item := o.Items()[0]
		merchant := merchantActor()
		require.NoError(t, o.AssignItem(item.ID(), merchant))

		historyBefore := len(o.StatusHistory())
		lifecycleBefore := len(o.Lifecycle())

		require.Error(t, o.AdvanceItem(item.ID(), ItemStatusDelivered, "", merchant))

		assert.Equal(t, ItemStatusAssigned, item.Status())
		assert.Len(t, o.StatusHistory(), historyBefore)
		assert.Len(t, o.Lifecycle(), lifecycleBefore)
	})
}

func TestOrderDerivedStatusAcrossItems(t *testing.T) {
	t.Run("should report partial while items diverge", func(t *testing.T) {
		o, _ := newTestOrder(t, 2)
		first := o.Items()[0]
		merchant := merchantActor()

		require.NoError(t, o.AssignItem(first.ID(), merchant))

		status, err := o.Status()
		require.NoError(t, err)
		assert.Equal(t, OrderStatusPartial, status)
	})

	t.Run("should report cancelled when every item ends negatively", func(t *testing.T) {
		o, customerID := newTestOrder(t, 2)
		customer := Actor{ID: customerID, Role: ActorRoleCustomer}
		admin := Actor{ID: kernel.NewUUID(), Role: ActorRoleAdmin}

		first := o.Items()[0]
		require.NoError(t, o.AssignItem(first.ID(), merchantActor()))
		require.NoError(t, o.AdvanceItem(first.ID(), ItemStatusCancelled, "", customer))
		require.NoError(t, o.MarkItemRejected(o.Items()[1].ID(), admin))

		status, err := o.Status()
		require.NoError(t, err)
		assert.Equal(t, OrderStatusCancelled, status)
	})
}

func TestOrderChangeTracking(t *testing.T) {
	t.Run("should record each accepted transition with its prior status", func(t *testing.T) {
		o, _ := newTestOrder(t, 2)
		item := o.Items()[0]
		merchant := merchantActor()

		require.NoError(t, o.AssignItem(item.ID(), merchant))
		require.NoError(t, o.AdvanceItem(item.ID(), ItemStatusProcessing, "", merchant))

		changes := o.ItemChanges()
		require.Len(t, changes, 2)

		assert.Equal(t, item.ID(), changes[0].ItemID)
		assert.Equal(t, ItemStatusPending, changes[0].FromStatus)
		assert.Equal(t, ItemStatusAssigned, changes[0].ToStatus)
		require.NotNil(t, changes[0].AssignedMerchantID)
		assert.True(t, changes[0].AssignedMerchantID.IsEqual(merchant.ID))

		assert.Equal(t, ItemStatusAssigned, changes[1].FromStatus)
		assert.Equal(t, ItemStatusProcessing, changes[1].ToStatus)
	})

	t.Run("should not record a change for a declined claim", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)
		item := o.Items()[0]

		require.NoError(t, o.AssignItem(item.ID(), merchantActor()))
		require.ErrorIs(t, o.AssignItem(item.ID(), merchantActor()), ErrItemAlreadyAssigned)

		assert.Len(t, o.ItemChanges(), 1)
	})

	t.Run("should not record item changes for a merchant decline", func(t *testing.T) {
		o, _ := newTestOrder(t, 1)

		require.NoError(t, o.RejectItem(o.Items()[0].ID(), merchantActor()))

		assert.Empty(t, o.ItemChanges(), "a decline keeps the item pending")
		assert.Len(t, o.NewLifecycle(), 2, "creation plus the decline entry")
	})

	t.Run("should expose only entries appended after restore", func(t *testing.T) {
		o, _ := newTestOrder(t, 2)

		restored, err := RestoreOrder(
			o.ID(), o.OrderNumber(), o.CustomerID(), o.Address(), o.Items(), o.Totals(),
			o.PaymentMethod(), o.DeliveryNotes(), o.IdempotencyKey(), o.CreatedAt(),
			o.StatusHistory(), o.Lifecycle(),
		)
		require.NoError(t, err)

		assert.Empty(t, restored.ItemChanges())
		assert.Empty(t, restored.NewStatusHistory())
		assert.Empty(t, restored.NewLifecycle())

		item := restored.Items()[0]
		require.NoError(t, restored.AssignItem(item.ID(), merchantActor()))

		require.Len(t, restored.NewStatusHistory(), 1)
		assert.Equal(t, ItemStatusAssigned, restored.NewStatusHistory()[0].Status)
		require.Len(t, restored.NewLifecycle(), 1)
		assert.Equal(t, EventItemAssigned, restored.NewLifecycle()[0].EventType)
	})

	t.Run("should start over after MarkPersisted", func(t *testing.T) {
		o, _ := newTestOrder(t, 2)
		merchant := merchantActor()
		item := o.Items()[0]

		require.NoError(t, o.AssignItem(item.ID(), merchant))
		o.MarkPersisted()

		assert.Empty(t, o.ItemChanges())
		assert.Empty(t, o.NewStatusHistory())
		assert.Empty(t, o.NewLifecycle())

		require.NoError(t, o.AdvanceItem(item.ID(), ItemStatusProcessing, "", merchant))
		require.Len(t, o.ItemChanges(), 1)
		assert.Equal(t, ItemStatusProcessing, o.ItemChanges()[0].ToStatus)
		assert.Len(t, o.NewStatusHistory(), 1)
	})
}
