package order_test

import (
	"strconv"
	"testing"

	"fishmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerificationCode(t *testing.T) {
	t.Run("should accept 4-digit numeric strings", func(t *testing.T) {
		for _, s := range []string{"1000", "9999", "1234", "5555"} {
			code, err := order.NewVerificationCode(s)
			require.NoError(t, err)
			assert.Equal(t, s, code.String())
		}
	})

	t.Run("should reject malformed codes", func(t *testing.T) {
		for _, s := range []string{"", "123", "12345", "12a4", "12 4", "-123", "١٢٣٤"} {
			_, err := order.NewVerificationCode(s)
			require.Error(t, err, "code %q", s)
		}
	})
}

func TestRandomCodeGenerator_Generate(t *testing.T) {
	gen := order.NewRandomCodeGenerator()

	t.Run("should stay within [1000, 9999]", func(t *testing.T) {
		for range 1000 {
			code := gen.Generate()
			require.NoError(t, code.Validate())

			n, err := strconv.Atoi(code.String())
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 1000)
			assert.LessOrEqual(t, n, 9999)
		}
	})

	t.Run("should not be constant", func(t *testing.T) {
		seen := make(map[order.VerificationCode]bool)
		for range 100 {
			seen[gen.Generate()] = true
		}
		assert.Greater(t, len(seen), 1)
	})
}
