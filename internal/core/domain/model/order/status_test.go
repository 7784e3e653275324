package order_test

import (
	"fmt"
	"testing"

	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Cooking))
		assert.Equal(t, 3, int(order.Cooked))
		assert.Equal(t, 4, int(order.PickedUp))
		assert.Equal(t, 5, int(order.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Cooking, order.Cooked, order.PickedUp, order.Delivered,
		} {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusUnknown, order.Status(-1), order.Status(6)} {
			err := status.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.StatusUnknown: "Unknown",
		order.Pending:       "Pending",
		order.Cooking:       "Cooking",
		order.Cooked:        "Cooked",
		order.PickedUp:      "PickedUp",
		order.Delivered:     "Delivered",
		order.Status(42):    "Unknown",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid status names", func(t *testing.T) {
		for _, name := range []string{"Pending", "Cooking", "Cooked", "PickedUp", "Delivered"} {
			status, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"Unknown", "pending", "Cancelled", ""} {
			_, err := order.StatusFromString(name)
			require.Error(t, err)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow each single forward step", func(t *testing.T) {
		steps := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Pending, order.Cooking},
			{order.Cooking, order.Cooked},
			{order.Cooked, order.PickedUp},
			{order.PickedUp, order.Delivered},
		}

		for _, step := range steps {
			t.Run(fmt.Sprintf("%s to %s", step.from, step.to), func(t *testing.T) {
				next, err := step.from.TransitionTo(step.to)
				require.NoError(t, err)
				assert.Equal(t, step.to, next)
			})
		}
	})

	t.Run("should reject skips, reversals and self transitions", func(t *testing.T) {
		all := []order.Status{order.Pending, order.Cooking, order.Cooked, order.PickedUp, order.Delivered}

		for _, from := range all {
			for _, to := range all {
				if to == from+1 {
					continue
				}
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					_, err := from.TransitionTo(to)
					require.Error(t, err)
					assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				})
			}
		}
	})

	t.Run("should reject leaving the terminal status", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())

		_, err := order.Delivered.TransitionTo(order.Status(6))
		require.Error(t, err)
	})

	t.Run("should reject transitions to invalid targets", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.StatusUnknown)
		require.Error(t, err)
	})
}
