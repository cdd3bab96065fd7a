package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"dinebot/internal/adapters/out/inmemory"
	"dinebot/internal/core/application/usecases/commands"
	"dinebot/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextOrderID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) AddItem(ctx context.Context, orderID int64, item string, quantity float64) error {
	args := m.Called(ctx, orderID, item, quantity)
	return args.Error(0)
}

func (m *MockOrderRepository) AddTracking(ctx context.Context, orderID int64, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) TotalPrice(ctx context.Context, orderID int64) (float64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderRepository) Status(ctx context.Context, orderID int64) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompleteOrderCommandHandler_Handle_UnknownSession(t *testing.T) {
	store := inmemory.NewCartStore()
	key := sessionKey(t)
	factory := new(MockOrderUoWFactory)
	h := commands.NewCompleteOrderCommandHandler(store, factory, discardLogger())

	cmd, _ := commands.NewCompleteOrderCommand(key)
	text, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.MsgOrderNotFound, text)
	assert.Equal(t, 0, store.Len(), "completion of an unknown session must not create state")
	factory.AssertNotCalled(t, "Create")
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := inmemory.NewCartStore()
	key := sessionKey(t)
	seedCart(t, store, key, map[string]float64{"pizza": 2, "mango lassi": 1}, []string{"pizza", "mango lassi"})

	repo := new(MockOrderRepository)
	txUoW := new(MockOrderUoW)
	mock.InOrder(
		txUoW.On("Begin", ctx).Return(nil).Once(),
		txUoW.On("OrderRepository").Return(repo).Once(),
		repo.On("NextOrderID", ctx).Return(int64(41), nil).Once(),
		repo.On("AddItem", ctx, int64(41), "pizza", 2.0).Return(nil).Once(),
		repo.On("AddItem", ctx, int64(41), "mango lassi", 1.0).Return(nil).Once(),
		repo.On("AddTracking", ctx, int64(41), "in progress").Return(nil).Once(),
		txUoW.On("Commit", ctx).Return(nil).Once(),
		txUoW.On("Rollback", ctx).Return(errors.New("no active transaction")).Once(),
	)

	readRepo := new(MockOrderRepository)
	readRepo.On("TotalPrice", ctx, int64(41)).Return(12.5, nil).Once()
	readRepo.On("Status", ctx, int64(41)).Return("in progress", nil).Once()
	readUoW := new(MockOrderUoW)
	readUoW.On("OrderRepository").Return(readRepo).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(txUoW).Once()
	factory.On("Create").Return(readUoW).Once()

	h := commands.NewCompleteOrderCommandHandler(store, factory, discardLogger())
	cmd, _ := commands.NewCompleteOrderCommand(key)
	text, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t,
		"Your order has been placed. Order ID: 41. Total amount: 12.5. Order Status: in progress",
		text)

	_, ok := store.Get(key)
	assert.False(t, ok, "the staged cart is discarded after completion")

	repo.AssertExpectations(t)
	readRepo.AssertExpectations(t)
	txUoW.AssertExpectations(t)
	readUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_LineItemInsertFails(t *testing.T) {
	ctx := t.Context()
	store := inmemory.NewCartStore()
	key := sessionKey(t)
	seedCart(t, store, key, map[string]float64{"pizza": 2, "biryani": 1}, []string{"pizza", "biryani"})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextOrderID", ctx).Return(int64(7), nil).Once(),
		repo.On("AddItem", ctx, int64(7), "pizza", 2.0).Return(nil).Once(),
		repo.On("AddItem", ctx, int64(7), "biryani", 1.0).Return(errors.New("item not on menu")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(store, factory, discardLogger())
	cmd, _ := commands.NewCompleteOrderCommand(key)
	text, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.MsgOrderProcessingFailed, text)

	_, ok := store.Get(key)
	assert.False(t, ok, "the staged cart is discarded even when persistence fails")

	repo.AssertNotCalled(t, "AddTracking", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_BeginFails(t *testing.T) {
	ctx := t.Context()
	store := inmemory.NewCartStore()
	key := sessionKey(t)
	seedCart(t, store, key, map[string]float64{"pizza": 2}, []string{"pizza"})

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(errors.New("connection lost")).Once()
	uow.On("Rollback", ctx).Return(errors.New("no active transaction")).Maybe()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(store, factory, discardLogger())
	cmd, _ := commands.NewCompleteOrderCommand(key)
	text, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.MsgOrderProcessingFailed, text)

	_, ok := store.Get(key)
	assert.False(t, ok)
}

func TestCompleteOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	h := commands.NewCompleteOrderCommandHandler(
		inmemory.NewCartStore(), new(MockOrderUoWFactory), discardLogger())

	_, err := h.Handle(t.Context(), commands.CompleteOrderCommand{})

	require.Error(t, err)
}
