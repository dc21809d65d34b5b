package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	client := mustActor(t, kernel.RoleClient)
	orderID := kernel.NewUUID()
	specs := newTestItemSpecs(t)
	cmd, err := commands.NewCreateOrderCommand(client, orderID, "mobile_money", specs)
	require.NoError(t, err)
	assert.Equal(t, client, cmd.Actor())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.Equal(t, "mobile_money", cmd.PaymentMethod())
	assert.Len(t, cmd.Items(), 2)
}

func TestNewCreateOrderCommand_TravelerCannotCreate(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		mustActor(t, kernel.RoleTraveler), kernel.NewUUID(), "mobile_money", newTestItemSpecs(t))
	require.ErrorIs(t, err, commands.ErrActorMustBeClient)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		mustActor(t, kernel.RoleClient), kernel.NewUUID(), "mobile_money", nil)
	require.ErrorIs(t, err, commands.ErrOrderItemsAreMissing)
}

func TestNewCreateOrderCommand_EmptyPaymentMethod(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		mustActor(t, kernel.RoleClient), kernel.NewUUID(), "", newTestItemSpecs(t))
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(
		mustActor(t, kernel.RoleClient), invalidID, "mobile_money", newTestItemSpecs(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
