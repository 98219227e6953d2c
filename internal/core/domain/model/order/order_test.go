package order_test

import (
	"testing"
	"time"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()
	address, err := order.NewDeliveryAddress("12 Harbour Road", "Fort Kochi", "Kochi", "682001", "opposite fish landing")
	require.NoError(t, err)
	return address
}

func validItems(t *testing.T) []order.Item {
	t.Helper()
	first, err := order.NewItem(kernel.NewUUID(), 1.5, 450)
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), 0.25, 800)
	require.NoError(t, err)
	return []order.Item{first, second}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		validAddress(t),
		"+91 98470 12345",
		"ring the bell twice",
		order.PaymentCashOnDelivery,
		validItems(t),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should start pending with payment pending and no code", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Empty(t, o.VerificationCode())
		assert.Equal(t, 1, o.Version())
	})

	t.Run("should sum line totals into total amount", func(t *testing.T) {
		o := newTestOrder(t)

		// 1.5 x 450 + 0.25 x 800
		assert.InDelta(t, 875.0, o.TotalAmount(), 1e-9)
		for _, item := range o.Items() {
			assert.InDelta(t, item.Quantity()*item.UnitPrice(), item.TotalPrice(), 1e-9)
		}
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			validAddress(t),
			"+91 98470 12345",
			"",
			order.PaymentCashOnDelivery,
			nil,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("should reject a short phone", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			validAddress(t),
			"12345",
			"",
			order.PaymentCashOnDelivery,
			validItems(t),
		)
		require.Error(t, err)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the happy path to delivered", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())

		require.NoError(t, o.StartPreparing())
		assert.Equal(t, order.Preparing, o.Status())

		code, err := o.StartDelivery("4821")
		require.NoError(t, err)
		assert.Equal(t, order.VerificationCode("4821"), code)
		assert.Equal(t, order.OutForDelivery, o.Status())

		require.NoError(t, o.CompleteDelivery("4821"))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject skipping states", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.StartPreparing()
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())

		_, err = o.StartDelivery("4821")
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.VerificationCode(), "failed transition must not store a code")
	})

	t.Run("should allow cancel from any active state", func(t *testing.T) {
		for _, setup := range []func(*order.Order){
			func(o *order.Order) {},
			func(o *order.Order) { _ = o.Confirm() },
			func(o *order.Order) { _ = o.Confirm(); _ = o.StartPreparing() },
			func(o *order.Order) {
				_ = o.Confirm()
				_ = o.StartPreparing()
				_, _ = o.StartDelivery("4821")
			},
		} {
			o := newTestOrder(t)
			setup(o)
			require.NoError(t, o.Cancel())
			assert.Equal(t, order.Cancelled, o.Status())
		}
	})

	t.Run("should reject any move out of a terminal state", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Confirm(), order.ErrInvalidTransition)
		require.ErrorIs(t, o.Cancel(), order.ErrInvalidTransition)
	})
}

func TestOrder_StartDelivery(t *testing.T) {
	t.Run("should keep the first code on repeated attempts", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.StartPreparing())

		code, err := o.StartDelivery("1111")
		require.NoError(t, err)
		assert.Equal(t, order.VerificationCode("1111"), code)

		// Re-entry is blocked by the transition graph; the stored code
		// must survive the failed attempt.
		_, err = o.StartDelivery("2222")
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.VerificationCode("1111"), o.VerificationCode())
	})

	t.Run("should reject a malformed code", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.StartPreparing())

		_, err := o.StartDelivery("12")
		require.Error(t, err)
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestOrder_CompleteDelivery(t *testing.T) {
	outForDelivery := func(t *testing.T, code string) *order.Order {
		t.Helper()
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.StartPreparing())
		_, err := o.StartDelivery(order.VerificationCode(code))
		require.NoError(t, err)
		return o
	}

	t.Run("should deliver on an exact match", func(t *testing.T) {
		o := outForDelivery(t, "7316")
		require.NoError(t, o.CompleteDelivery("7316"))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject a wrong code and stay out for delivery", func(t *testing.T) {
		o := outForDelivery(t, "7316")

		err := o.CompleteDelivery("7315")
		require.ErrorIs(t, err, order.ErrVerificationMismatch)
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Equal(t, order.VerificationCode("7316"), o.VerificationCode())

		// The stored code survives mismatches; a later correct entry works.
		require.NoError(t, o.CompleteDelivery("7316"))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should compare strings exactly", func(t *testing.T) {
		o := outForDelivery(t, "7316")

		for _, entered := range []string{" 7316", "7316 ", "07316", ""} {
			err := o.CompleteDelivery(entered)
			require.ErrorIs(t, err, order.ErrVerificationMismatch, "entered %q", entered)
		}
	})

	t.Run("should reject delivery from the wrong state", func(t *testing.T) {
		o := newTestOrder(t)
		err := o.CompleteDelivery("7316")
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should require a stored code", func(t *testing.T) {
		// An order restored with out_for_delivery status but no code is a
		// data problem; delivery must not proceed.
		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			validAddress(t),
			"+91 98470 12345",
			"",
			order.PaymentCashOnDelivery,
			order.PaymentPending,
			order.OutForDelivery,
			validItems(t),
			875,
			"",
			3,
			time.Now().UTC().Add(-time.Hour),
			time.Now().UTC(),
		)
		require.NoError(t, err)

		deliverErr := o.CompleteDelivery("1234")
		require.ErrorIs(t, deliverErr, order.ErrMissingVerificationCode)
		assert.Equal(t, order.OutForDelivery, o.Status())
	})

	t.Run("should settle cash on delivery as paid", func(t *testing.T) {
		o := outForDelivery(t, "7316")
		require.NoError(t, o.CompleteDelivery("7316"))
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})

	t.Run("should leave online payment pending", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			validAddress(t),
			"+91 98470 12345",
			"",
			order.PaymentOnline,
			validItems(t),
		)
		require.NoError(t, err)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.StartPreparing())
		_, err = o.StartDelivery("7316")
		require.NoError(t, err)

		require.NoError(t, o.CompleteDelivery("7316"))
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})
}

func TestOrder_RequestTransition(t *testing.T) {
	t.Run("should return the issued code only when going out for delivery", func(t *testing.T) {
		o := newTestOrder(t)

		code, err := o.RequestTransition(order.Confirmed, "", "9999")
		require.NoError(t, err)
		assert.Empty(t, code)

		code, err = o.RequestTransition(order.Preparing, "", "9999")
		require.NoError(t, err)
		assert.Empty(t, code)

		code, err = o.RequestTransition(order.OutForDelivery, "", "9999")
		require.NoError(t, err)
		assert.Equal(t, order.VerificationCode("9999"), code)

		code, err = o.RequestTransition(order.Delivered, "9999", "1111")
		require.NoError(t, err)
		assert.Empty(t, code)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject an invalid target", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.RequestTransition(order.Unknown, "", "1234")
		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should preserve the stored code and version", func(t *testing.T) {
		createdAt := time.Now().UTC().Add(-2 * time.Hour)
		updatedAt := time.Now().UTC().Add(-time.Hour)

		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			validAddress(t),
			"+91 98470 12345",
			"leave at the gate",
			order.PaymentOnline,
			order.PaymentPaid,
			order.OutForDelivery,
			validItems(t),
			875,
			"4821",
			5,
			createdAt,
			updatedAt,
		)
		require.NoError(t, err)
		require.NoError(t, o.Validate())

		assert.Equal(t, order.VerificationCode("4821"), o.VerificationCode())
		assert.Equal(t, 5, o.Version())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})
}

func TestValidatePhone(t *testing.T) {
	t.Run("should accept common formats", func(t *testing.T) {
		for _, phone := range []string{"9847012345", "+91 98470 12345", "98470-12345"} {
			require.NoError(t, order.ValidatePhone(phone), "phone %q", phone)
		}
	})

	t.Run("should reject short or malformed numbers", func(t *testing.T) {
		for _, phone := range []string{"", "12345", "98470php12345x", "(984) 7012345"} {
			require.Error(t, order.ValidatePhone(phone), "phone %q", phone)
		}
	})
}
