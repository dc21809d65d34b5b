package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, int64(0), m.Amount())
		assert.True(t, m.IsZero())
	})

	t.Run("should create money from positive amount", func(t *testing.T) {
		m, err := kernel.NewMoney(12500)

		require.NoError(t, err)
		assert.Equal(t, int64(12500), m.Amount())
		assert.False(t, m.IsZero())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-1 is negative")
		assert.Equal(t, kernel.Money{}, m)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add two amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(500)
		b, _ := kernel.NewMoney(100)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(600), sum.Amount())
	})

	t.Run("should not mutate operands", func(t *testing.T) {
		a, _ := kernel.NewMoney(500)
		b, _ := kernel.NewMoney(100)

		_, _ = a.Add(b)

		assert.Equal(t, int64(500), a.Amount())
		assert.Equal(t, int64(100), b.Amount())
	})

	t.Run("should fail when the other value is not constructed", func(t *testing.T) {
		a, _ := kernel.NewMoney(500)
		var b kernel.Money

		_, err := a.Add(b)

		require.Error(t, err)
	})
}

func TestMoney_Subtract(t *testing.T) {
	t.Run("should subtract a smaller amount", func(t *testing.T) {
		a, _ := kernel.NewMoney(500)
		b, _ := kernel.NewMoney(200)

		diff, err := a.Subtract(b)

		require.NoError(t, err)
		assert.Equal(t, int64(300), diff.Amount())
	})

	t.Run("should subtract an equal amount down to zero", func(t *testing.T) {
		a, _ := kernel.NewMoney(500)
		b, _ := kernel.NewMoney(500)

		diff, err := a.Subtract(b)

		require.NoError(t, err)
		assert.True(t, diff.IsZero())
	})

	t.Run("should fail when the result would be negative", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(200)

		_, err := a.Subtract(b)

		require.Error(t, err)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare by amount", func(t *testing.T) {
		a, _ := kernel.NewMoney(500)
		b, _ := kernel.NewMoney(500)
		c, _ := kernel.NewMoney(501)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should fail validation for zero value money", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}
