package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/core/domain"
	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SelectProducts(
	ctx context.Context, page domain.PageParams,
) ([]domain.Product, error) {
	args := m.Called(ctx, page)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockStorage) SelectProduct(
	ctx context.Context, productID int64,
) (domain.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(domain.Product)
	return p, args.Error(1)
}

func (m *MockStorage) InsertProduct(
	ctx context.Context, draft domain.ProductDraft,
) (domain.Product, error) {
	args := m.Called(ctx, draft)
	p, _ := args.Get(0).(domain.Product)
	return p, args.Error(1)
}

func (m *MockStorage) UpdateProduct(
	ctx context.Context, productID int64, draft domain.ProductDraft,
) (domain.Product, error) {
	args := m.Called(ctx, productID, draft)
	p, _ := args.Get(0).(domain.Product)
	return p, args.Error(1)
}

func (m *MockStorage) DeleteProduct(
	ctx context.Context, productID int64,
) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockStorage) TotalSales(
	ctx context.Context, productID int64,
) (float64, error) {
	args := m.Called(ctx, productID)
	total, _ := args.Get(0).(float64)
	return total, args.Error(1)
}

func TestCreateProduct(t *testing.T) {
	t.Run("ValidDraftReachesStorage", func(t *testing.T) {
		draft := domain.ProductDraft{
			ProductName: "Widget", Cost: 9.99, Quantity: 5,
		}
		storage := new(MockStorage)
		storage.On("InsertProduct", mock.Anything, draft).Return(
			domain.Product{ProductID: 1, ProductName: "Widget"}, nil,
		)

		s := service.New(storage)
		p, err := s.CreateProduct(t.Context(), draft)

		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ProductID)
		storage.AssertExpectations(t)
	})

	t.Run("InvalidDraftNeverReachesStorage", func(t *testing.T) {
		storage := new(MockStorage)

		s := service.New(storage)
		_, err := s.CreateProduct(t.Context(), domain.ProductDraft{
			ProductName: "", Cost: -1, Quantity: -2,
		})

		require.Error(t, err)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t,
			[]string{"product_name", "cost", "quantity"}, vErr.Fields)
		storage.AssertNotCalled(t, "InsertProduct")
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("InvalidDraftNeverReachesStorage", func(t *testing.T) {
		storage := new(MockStorage)

		s := service.New(storage)
		_, err := s.UpdateProduct(t.Context(), 1, domain.ProductDraft{})

		require.Error(t, err)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		storage.AssertNotCalled(t, "UpdateProduct")
	})

	t.Run("NotFoundIsPreservedThroughWrapping", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("UpdateProduct", mock.Anything, int64(42), mock.Anything).
			Return(domain.Product{},
				fmt.Errorf("repo: %w", domain.ErrProductNotFound))

		s := service.New(storage)
		_, err := s.UpdateProduct(t.Context(), 42, domain.ProductDraft{
			ProductName: "Widget2", Cost: 10.5, Quantity: 3,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("SecondDeleteIsNotFound", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("DeleteProduct", mock.Anything, int64(1)).
			Return(nil).Once()
		storage.On("DeleteProduct", mock.Anything, int64(1)).
			Return(fmt.Errorf("repo: %w", domain.ErrProductNotFound)).Once()

		s := service.New(storage)
		require.NoError(t, s.DeleteProduct(t.Context(), 1))

		err := s.DeleteProduct(t.Context(), 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		storage.AssertExpectations(t)
	})
}

func TestListProducts(t *testing.T) {
	t.Run("PassesPageThrough", func(t *testing.T) {
		page := domain.NewPageParams(100, 50)
		storage := new(MockStorage)
		storage.On("SelectProducts", mock.Anything, page).
			Return([]domain.Product{}, nil)

		s := service.New(storage)
		ps, err := s.ListProducts(t.Context(), page)

		require.NoError(t, err)
		assert.Empty(t, ps)
		storage.AssertExpectations(t)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		storageErr := errors.New("connection reset")
		storage := new(MockStorage)
		storage.On("SelectProducts", mock.Anything, mock.Anything).
			Return(nil, storageErr)

		s := service.New(storage)
		_, err := s.ListProducts(t.Context(), domain.NewPageParams(10, 0))

		require.Error(t, err)
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestTotalSalesByProduct(t *testing.T) {
	t.Run("ZeroSalesIsNotAnError", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("TotalSales", mock.Anything, int64(2)).
			Return(float64(0), nil)

		s := service.New(storage)
		total, err := s.TotalSalesByProduct(t.Context(), 2)

		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("AbsentProduct", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("TotalSales", mock.Anything, int64(3)).
			Return(float64(0),
				fmt.Errorf("repo: %w", domain.ErrProductNotFound))

		s := service.New(storage)
		_, err := s.TotalSalesByProduct(t.Context(), 3)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestCanceledContext(t *testing.T) {
	storage := new(MockStorage)
	s := service.New(storage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ProductByID(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	storage.AssertNotCalled(t, "SelectProduct")
}
