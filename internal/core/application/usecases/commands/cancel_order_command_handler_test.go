package commands_test

import (
	"testing"

	"shopadmin/internal/core/application/usecases/commands"
	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/order"
	"shopadmin/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := orderAt(t, order.Pending, codMethod(t), order.PaymentPending, nil)
	cmd, err := commands.NewCancelOrderCommand(
		testOrder.ID(), "customer asked to cancel", kernel.NewUUID(), false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	activityRepo := new(MockActivityRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ActivityRepository").Return(activityRepo).Once(),
		activityRepo.On("Add", ctx, mock.AnythingOfType("*activity.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStatusChanged", ctx, mock.AnythingOfType("ports.OrderStatusChangedEvent")).
			Return(nil).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, publisher, zap.NewNop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Cancelled, testOrder.Status())
	require.NotNil(t, testOrder.CancellationReason())
	require.Equal(t, "customer asked to cancel", *testOrder.CancellationReason())

	event := publisher.Calls[0].Arguments[1].(ports.OrderStatusChangedEvent)
	require.Equal(t, "customer asked to cancel", event.Reason)
}

func TestCancelOrderCommandHandler_Handle_PaidOrderNeedsConfirmation(t *testing.T) {
	ctx := t.Context()

	testOrder := orderAt(t, order.Processing, bankMethod(t), order.PaymentPaid, nil)
	cmd, err := commands.NewCancelOrderCommand(
		testOrder.ID(), "supplier out of stock", kernel.NewUUID(), false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, new(MockEventPublisher), zap.NewNop())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrConfirmationRequired)
	require.Equal(t, order.Processing, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_ShippingOrderRejected(t *testing.T) {
	ctx := t.Context()

	shipperID := kernel.NewUUID()
	testOrder := orderAt(t, order.Shipping, codMethod(t), order.PaymentPending, &shipperID)
	cmd, err := commands.NewCancelOrderCommand(
		testOrder.ID(), "changed my mind", kernel.NewUUID(), true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, new(MockEventPublisher), zap.NewNop())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTransitionRejected)
}

func TestNewCancelOrderCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "", kernel.NewUUID(), false)
	require.Error(t, err)
}
