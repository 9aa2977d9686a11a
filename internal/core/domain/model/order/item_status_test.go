package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemStatusFromString(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		cases := map[string]ItemStatus{
			"pending":    ItemStatusPending,
			"assigned":   ItemStatusAssigned,
			"processing": ItemStatusProcessing,
			"shipped":    ItemStatusShipped,
			"delivered":  ItemStatusDelivered,
			"cancelled":  ItemStatusCancelled,
			"rejected":   ItemStatusRejected,
		}

		for name, want := range cases {
			got, err := ItemStatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, name, got.String())
		}
	})

	t.Run("should reject unknown status names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "PENDING", "in_transit"} {
			_, err := ItemStatusFromString(name)
			assert.Error(t, err, name)
		}
	})
}

func TestItemStatusValidate(t *testing.T) {
	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		assert.Error(t, ItemStatusUnknown.Validate())
		assert.Error(t, ItemStatus(100).Validate())
		assert.Error(t, ItemStatus(-1).Validate())
	})

	t.Run("should accept all defined statuses", func(t *testing.T) {
		for status := range getValidItemStatusStrings() {
			assert.NoError(t, status.Validate())
		}
	})
}

func TestItemStatusTransitions(t *testing.T) {
	t.Run("should allow the happy fulfillment path", func(t *testing.T) {
		path := []ItemStatus{
			ItemStatusAssigned,
			ItemStatusProcessing,
			ItemStatusShipped,
			ItemStatusDelivered,
		}

		current := ItemStatusPending
		for _, next := range path {
			got, err := current.TransitionTo(next)
			require.NoError(t, err)
			current = got
		}
		assert.Equal(t, ItemStatusDelivered, current)
	})

	t.Run("should allow delivering directly from processing", func(t *testing.T) {
		got, err := ItemStatusProcessing.TransitionTo(ItemStatusDelivered)
		require.NoError(t, err)
		assert.Equal(t, ItemStatusDelivered, got)
	})

	t.Run("should allow cancelling before shipping", func(t *testing.T) {
		for _, from := range []ItemStatus{ItemStatusAssigned, ItemStatusProcessing} {
			got, err := from.TransitionTo(ItemStatusCancelled)
			require.NoError(t, err)
			assert.Equal(t, ItemStatusCancelled, got)
		}
	})

	t.Run("should not allow cancelling after shipping", func(t *testing.T) {
		_, err := ItemStatusShipped.TransitionTo(ItemStatusCancelled)
		assert.Error(t, err)
		assert.Error(t, ItemStatusShipped.ValidateCancel())
	})

	t.Run("should not allow skipping statuses", func(t *testing.T) {
		cases := []struct {
			from, to ItemStatus
		}{
			{ItemStatusPending, ItemStatusProcessing},
			{ItemStatusPending, ItemStatusShipped},
			{ItemStatusPending, ItemStatusDelivered},
			{ItemStatusAssigned, ItemStatusShipped},
			{ItemStatusAssigned, ItemStatusDelivered},
		}

		for _, c := range cases {
			got, err := c.from.TransitionTo(c.to)
			assert.Error(t, err, "%s -> %s", c.from, c.to)
			assert.Equal(t, ItemStatus(0), got)
		}
	})

	t.Run("should not allow moving backwards", func(t *testing.T) {
		cases := []struct {
			from, to ItemStatus
		}{
			{ItemStatusAssigned, ItemStatusPending},
			{ItemStatusProcessing, ItemStatusAssigned},
			{ItemStatusShipped, ItemStatusProcessing},
			{ItemStatusDelivered, ItemStatusShipped},
		}

		for _, c := range cases {
			_, err := c.from.TransitionTo(c.to)
			assert.Error(t, err, "%s -> %s", c.from, c.to)
		}
	})

	t.Run("should not allow leaving terminal statuses", func(t *testing.T) {
		terminals := []ItemStatus{ItemStatusDelivered, ItemStatusCancelled, ItemStatusRejected}
		for _, terminal := range terminals {
			assert.True(t, terminal.IsTerminal())
			for target := range getValidItemStatusStrings() {
				_, err := terminal.TransitionTo(target)
				assert.Error(t, err, "%s -> %s", terminal, target)
			}
		}
	})

	t.Run("should reject invalid targets", func(t *testing.T) {
		_, err := ItemStatusPending.TransitionTo(ItemStatusUnknown)
		assert.Error(t, err)
	})
}

func TestItemStatusValidateAssign(t *testing.T) {
	t.Run("should only allow assigning pending items", func(t *testing.T) {
		assert.NoError(t, ItemStatusPending.ValidateAssign())

		for status := range getValidItemStatusStrings() {
			if status == ItemStatusPending {
				continue
			}
			assert.Error(t, status.ValidateAssign(), status.String())
		}
	})
}
