package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPaymentsByStatusQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPaymentsByStatusQuery(payment.StatusEscrow)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, payment.StatusEscrow, query.Status())
}

func TestNewGetPaymentsByStatusQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetPaymentsByStatusQuery(payment.StatusUnknown)
	require.Error(t, err)
}

func TestGetPaymentsByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPaymentsByStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPaymentsByStatusQueryIsNotConstructed)
}
