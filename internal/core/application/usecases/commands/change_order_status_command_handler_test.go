package commands_test

import (
	"errors"
	"testing"

	"shopadmin/internal/core/application/usecases/commands"
	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/order"
	"shopadmin/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChangeStatusHandler(
	factory *MockUoWFactory,
	publisher *MockEventPublisher,
) commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(factory, publisher, zap.NewNop())
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := orderAt(t, order.Pending, bankMethod(t), order.PaymentPaid, nil)
	cmd, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Confirmed, kernel.NewUUID(), user.RoleAdmin, false)
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

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newChangeStatusHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Confirmed, testOrder.Status())
	orderRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	ctx := t.Context()

	testOrder := orderAt(t, order.Confirmed, bankMethod(t), order.PaymentPaid, nil)
	cmd, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Confirmed, kernel.NewUUID(), user.RoleAdmin, false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newChangeStatusHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_RejectedTransition(t *testing.T) {
	ctx := t.Context()

	testOrder := orderAt(t, order.Pending, bankMethod(t), order.PaymentPending, nil)
	cmd, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Delivered, kernel.NewUUID(), user.RoleAdmin, false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newChangeStatusHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTransitionRejected)
	require.Equal(t, order.Pending, testOrder.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_WarningNeedsConfirmation(t *testing.T) {
	ctx := t.Context()

	// Cancelling a paid order is a warning transition: a refund is due.
	testOrder := orderAt(t, order.Confirmed, bankMethod(t), order.PaymentPaid, nil)
	cmd, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Cancelled, kernel.NewUUID(), user.RoleAdmin, false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newChangeStatusHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrConfirmationRequired)
	require.Equal(t, order.Confirmed, testOrder.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_ConfirmedWarningProceeds(t *testing.T) {
	ctx := t.Context()

	testOrder := orderAt(t, order.Confirmed, bankMethod(t), order.PaymentPaid, nil)
	cmd, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Cancelled, kernel.NewUUID(), user.RoleAdmin, true)
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

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newChangeStatusHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Cancelled, testOrder.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_DeliveredDeductsStock(t *testing.T) {
	ctx := t.Context()

	shipperID := kernel.NewUUID()
	testOrder := orderAt(t, order.Shipping, codMethod(t), order.PaymentPending, &shipperID)
	testProd := testProduct(t, 10)

	cmd, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Delivered, kernel.NewUUID(), user.RoleAdmin, false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	activityRepo := new(MockActivityRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, testOrder.Items()[0].ProductID()).Return(testProd, nil).Once(),
		productRepo.On("Update", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ActivityRepository").Return(activityRepo).Once(),
		activityRepo.On("Add", ctx, mock.AnythingOfType("*activity.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStatusChanged", ctx, mock.AnythingOfType("ports.OrderStatusChangedEvent")).
			Return(nil).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newChangeStatusHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Delivered, testOrder.Status())
	require.Equal(t, 8, testProd.Stock())
	productRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InsufficientStockAborts(t *testing.T) {
	ctx := t.Context()

	shipperID := kernel.NewUUID()
	testOrder := orderAt(t, order.Shipping, codMethod(t), order.PaymentPending, &shipperID)
	testProd := testProduct(t, 1) // order wants 2

	cmd, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Delivered, kernel.NewUUID(), user.RoleAdmin, false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, testOrder.Items()[0].ProductID()).Return(testProd, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newChangeStatusHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestChangeOrderStatusCommandHandler_Handle_ShipperOwnOrderOnly(t *testing.T) {
	ctx := t.Context()

	otherShipper := kernel.NewUUID()
	testOrder := orderAt(t, order.Shipping, codMethod(t), order.PaymentPending, &otherShipper)

	cmd, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Delivered, kernel.NewUUID(), user.RoleShipper, false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newChangeStatusHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrShipperNotPermitted)
}

func TestChangeOrderStatusCommandHandler_Handle_ShipperDeliveredOnly(t *testing.T) {
	ctx := t.Context()

	shipperID := kernel.NewUUID()
	testOrder := orderAt(t, order.Shipping, codMethod(t), order.PaymentPending, &shipperID)

	cmd, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Cancelled, shipperID, user.RoleShipper, false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newChangeStatusHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrShipperNotPermitted)
}

func TestChangeOrderStatusCommandHandler_Handle_PublishFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()

	testOrder := orderAt(t, order.Pending, bankMethod(t), order.PaymentPending, nil)
	cmd, err := commands.NewChangeOrderStatusCommand(
		testOrder.ID(), order.Confirmed, kernel.NewUUID(), user.RoleStaff, false)
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
			Return(errors.New("broker unavailable")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newChangeStatusHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := newChangeStatusHandler(factory, new(MockEventPublisher))
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
