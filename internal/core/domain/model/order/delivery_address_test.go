package order_test

import (
	"testing"

	"fishmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryAddress(t *testing.T) {
	t.Run("should trim and store all parts", func(t *testing.T) {
		address, err := order.NewDeliveryAddress(
			" 12 Harbour Road ", " Fort Kochi ", " Kochi ", " 682001 ", " opposite fish landing ")
		require.NoError(t, err)
		require.NoError(t, address.Validate())

		assert.Equal(t, "12 Harbour Road", address.Street())
		assert.Equal(t, "Fort Kochi", address.Area())
		assert.Equal(t, "Kochi", address.City())
		assert.Equal(t, "682001", address.Pincode())
		assert.Equal(t, "opposite fish landing", address.Landmark())
	})

	t.Run("should allow an empty landmark", func(t *testing.T) {
		address, err := order.NewDeliveryAddress("12 Harbour Road", "Fort Kochi", "Kochi", "682001", "")
		require.NoError(t, err)
		assert.Empty(t, address.Landmark())
	})

	t.Run("should require street, area, city and pincode", func(t *testing.T) {
		cases := map[string][5]string{
			"street":  {"", "Fort Kochi", "Kochi", "682001", ""},
			"area":    {"12 Harbour Road", "  ", "Kochi", "682001", ""},
			"city":    {"12 Harbour Road", "Fort Kochi", "", "682001", ""},
			"pincode": {"12 Harbour Road", "Fort Kochi", "Kochi", "", ""},
		}

		for field, parts := range cases {
			_, err := order.NewDeliveryAddress(parts[0], parts[1], parts[2], parts[3], parts[4])
			require.Error(t, err, "missing %s", field)
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		var address order.DeliveryAddress
		require.ErrorIs(t, address.Validate(), order.ErrDeliveryAddressIsNotConstructed)
	})
}
