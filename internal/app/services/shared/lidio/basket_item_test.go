package lidio

import (
	"testing"

	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBasketItem(t *testing.T) {
	t.Run("enum fields are checked on assignment", func(t *testing.T) {
		for _, itemType := range constvars.LidioBasketItemTypes {
			_, err := NewBasketItem(map[string]any{"itemType": itemType})
			assert.NoError(t, err, itemType)
		}
		for _, category := range constvars.LidioCriticalBasketItemCategories {
			_, err := NewBasketItem(map[string]any{"criticalCategory": category})
			assert.NoError(t, err, category)
		}

		_, err := NewBasketItem(map[string]any{"name": "X", "itemType": "Digital"})
		require.Error(t, err)
		assert.ErrorIs(t, err, exceptions.ErrKindValidation)
		assert.Contains(t, err.Error(), "Digital")
		assert.Contains(t, err.Error(), "Virtual, Physical")

		_, err = NewBasketItem(map[string]any{"criticalCategory": "Spaceship"})
		assert.ErrorIs(t, err, exceptions.ErrKindValidation)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := NewBasketItem(map[string]any{"name": "X", "colour": "red"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "colour")
	})

	t.Run("empty options are rejected", func(t *testing.T) {
		_, err := NewBasketItem(map[string]any{})
		assert.ErrorIs(t, err, exceptions.ErrKindValidation)
	})

	t.Run("quantity must be a whole number", func(t *testing.T) {
		_, err := NewBasketItem(map[string]any{"quantity": 1.5})
		assert.ErrorIs(t, err, exceptions.ErrKindValidation)
	})
}

func TestBasketItem_ToMap(t *testing.T) {
	t.Run("required fields are checked at serialization", func(t *testing.T) {
		tests := []struct {
			missing string
			options map[string]any
		}{
			{"name", map[string]any{"quantity": 1, "unitPrice": 5}},
			{"quantity", map[string]any{"name": "X", "unitPrice": 5}},
			{"unitPrice", map[string]any{"name": "X", "quantity": 1}},
		}
		for _, tt := range tests {
			t.Run(tt.missing, func(t *testing.T) {
				item, err := NewBasketItem(tt.options)
				require.NoError(t, err)

				_, err = item.ToMap()
				require.Error(t, err)
				assert.ErrorIs(t, err, exceptions.ErrKindValidation)
				assert.Contains(t, err.Error(), tt.missing)
			})
		}
	})

	t.Run("marketplace required fields are deferred", func(t *testing.T) {
		item, err := NewBasketItem(map[string]any{
			"name":        "X",
			"quantity":    1,
			"unitPrice":   5,
			"marketplace": map[string]any{"itemTotalPrice": 5},
		})
		require.NoError(t, err)

		_, err = item.ToMap()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "marketplace.subsellerId")
		assert.Contains(t, err.Error(), "basketItems[X]")
	})

	t.Run("marketplace rejects unknown keys", func(t *testing.T) {
		_, err := NewBasketItem(map[string]any{"marketplace": map[string]any{"commission": 1}})
		assert.ErrorIs(t, err, exceptions.ErrKindValidation)
	})

	t.Run("complete item", func(t *testing.T) {
		item, err := NewBasketItem(map[string]any{
			"name":             "Phone",
			"category1":        "Electronics",
			"quantity":         2,
			"unitPrice":        "499.90",
			"itemType":         "Physical",
			"criticalCategory": "MobilePhone",
			"marketplace": map[string]any{
				"subsellerId":    17,
				"itemTotalPrice": 999.8,
			},
		})
		require.NoError(t, err)

		serialized, err := item.ToMap()
		require.NoError(t, err)

		assert.Equal(t, "Phone", serialized["name"])
		assert.Equal(t, 2, serialized["quantity"])
		assert.Equal(t, 499.9, serialized["unitPrice"])
		assert.Equal(t, "MobilePhone", serialized["criticalCategory"])
		assert.Equal(t, map[string]any{"subsellerId": 17, "itemTotalPrice": 999.8}, serialized["marketplace"])
		assert.Equal(t, "Phone", item.Name())
	})
}
