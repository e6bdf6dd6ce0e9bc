package catalog

import (
	"testing"

	"github.com/minimarket/backoffice-api/infrastructure/repository/mocks"
	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_AddProductCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)

	service := NewService(mockCategoryRepo, mockProductRepo)

	tests := []struct {
		name          string
		productID     int
		code          string
		setup         func()
		expectedCodes []string
		expectedErr   error
	}{
		{
			name:      "Adiciona código a produto sem códigos",
			productID: 1,
			code:      "7591002100124",
			setup: func() {
				mockProductRepo.EXPECT().
					GetByID(1).
					Return(&domain.Product{ID: 1, Name: "Agua 600ml"}, nil)

				mockProductRepo.EXPECT().
					UpdateCodes(1, []string{"7591002100124"}).
					Return(nil)
			},
			expectedCodes: []string{"7591002100124"},
		},
		{
			name:      "Anexa ao final da lista existente",
			productID: 2,
			code:      "999",
			setup: func() {
				mockProductRepo.EXPECT().
					GetByID(2).
					Return(&domain.Product{ID: 2, Codes: []string{"111", "222"}}, nil)

				mockProductRepo.EXPECT().
					UpdateCodes(2, []string{"111", "222", "999"}).
					Return(nil)
			},
			expectedCodes: []string{"111", "222", "999"},
		},
		{
			name:      "Código duplicado não altera o produto",
			productID: 3,
			code:      "111",
			setup: func() {
				// Nenhuma chamada a UpdateCodes é esperada
				mockProductRepo.EXPECT().
					GetByID(3).
					Return(&domain.Product{ID: 3, Codes: []string{"111", "222"}}, nil)
			},
			expectedCodes: []string{"111", "222"},
		},
		{
			name:      "Produto inexistente",
			productID: 42,
			code:      "123",
			setup: func() {
				mockProductRepo.EXPECT().
					GetByID(42).
					Return(nil, nil)
			},
			expectedErr: ErrProductNotFound,
		},
		{
			name:      "Erro ao buscar produto é propagado",
			productID: 5,
			code:      "123",
			setup: func() {
				mockProductRepo.EXPECT().
					GetByID(5).
					Return(nil, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:      "Erro ao persistir códigos é propagado",
			productID: 6,
			code:      "123",
			setup: func() {
				mockProductRepo.EXPECT().
					GetByID(6).
					Return(&domain.Product{ID: 6}, nil)

				mockProductRepo.EXPECT().
					UpdateCodes(6, []string{"123"}).
					Return(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			codes, err := service.AddProductCode(tt.productID, tt.code)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCodes, codes)
			}
		})
	}
}

func TestService_ListCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)

	service := NewService(mockCategoryRepo, mockProductRepo)

	categories := []*domain.Category{
		{
			ID:   1,
			Name: "Bebidas",
			Products: []*domain.Product{
				{ID: 1, Name: "Agua 600ml", SalePrice: decimal.RequireFromString("0.75")},
				{ID: 2, Name: "Soda cola 355ml", SalePrice: decimal.RequireFromString("0.90")},
			},
		},
		{ID: 2, Name: "Snacks", Products: []*domain.Product{}},
	}

	mockCategoryRepo.EXPECT().ListWithProducts().Return(categories, nil)

	result, err := service.ListCategories()
	assert.NoError(t, err)
	assert.Equal(t, categories, result)
}

func TestService_ListProductsWithoutCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)

	service := NewService(mockCategoryRepo, mockProductRepo)

	t.Run("Retorna o agrupamento vindo da fonte", func(t *testing.T) {
		categories := []*domain.Category{
			{ID: 1, Name: "Abarrotes", Products: []*domain.Product{{ID: 13, Name: "Frijoles rojos 400g"}}},
		}

		mockCategoryRepo.EXPECT().ListWithProductsWithoutCodes().Return(categories, nil)

		result, err := service.ListProductsWithoutCodes()
		assert.NoError(t, err)
		assert.Equal(t, categories, result)
	})

	t.Run("Erro da fonte é propagado", func(t *testing.T) {
		mockCategoryRepo.EXPECT().ListWithProductsWithoutCodes().Return(nil, assert.AnError)

		result, err := service.ListProductsWithoutCodes()
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
