package ranking

import (
	"testing"
	"time"

	"github.com/minimarket/backoffice-api/infrastructure/repository/mocks"
	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBestSellerService_GetBestSellers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBestSellerRepo := mocks.NewMockBestSellerRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockBestSellerSnapshotRepository(ctrl)

	service := &BestSellerService{
		bestSellerRepository: mockBestSellerRepo,
		productRepository:    mockProductRepo,
		snapshotRepository:   mockSnapshotRepo,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, result []*domain.BestSellerEntry)
		hasError bool
	}{
		{
			name: "Ranking preserva a ordem das somas, inclusive empates",
			setup: func() {
				mockBestSellerRepo.EXPECT().
					GetQuantitySoldByProduct().
					Return([]*domain.ProductQuantity{
						{ProductID: 1, QuantitySold: 50},
						{ProductID: 2, QuantitySold: 50},
						{ProductID: 3, QuantitySold: 10},
					}, nil)

				mockProductRepo.EXPECT().
					GetByIDs([]int{1, 2, 3}).
					Return([]*domain.Product{
						{ID: 3, Name: "Agua 600ml", SalePrice: decimal.RequireFromString("0.75"), Codes: []string{"123"}},
						{ID: 1, Name: "Soda cola 355ml", SalePrice: decimal.RequireFromString("0.90")},
						{ID: 2, Name: "Papas fritas 45g", SalePrice: decimal.RequireFromString("0.85")},
					}, nil)
			},
			validate: func(t *testing.T, result []*domain.BestSellerEntry) {
				assert.Len(t, result, 3)

				assert.Equal(t, 1, result[0].ProductID)
				assert.Equal(t, 50, result[0].QuantitySold)
				assert.Equal(t, "Soda cola 355ml", *result[0].Name)

				assert.Equal(t, 2, result[1].ProductID)
				assert.Equal(t, 50, result[1].QuantitySold)
				assert.Equal(t, "Papas fritas 45g", *result[1].Name)

				assert.Equal(t, 3, result[2].ProductID)
				assert.Equal(t, 10, result[2].QuantitySold)
				assert.Equal(t, []string{"123"}, result[2].Codes)
			},
		},
		{
			name: "Produto sem metadados vira entrada com campos nulos",
			setup: func() {
				mockBestSellerRepo.EXPECT().
					GetQuantitySoldByProduct().
					Return([]*domain.ProductQuantity{
						{ProductID: 7, QuantitySold: 20},
						{ProductID: 99, QuantitySold: 5},
					}, nil)

				// O produto 99 não existe mais no catálogo
				mockProductRepo.EXPECT().
					GetByIDs([]int{7, 99}).
					Return([]*domain.Product{
						{ID: 7, Name: "Leche entera 1L", SalePrice: decimal.RequireFromString("1.95")},
					}, nil)
			},
			validate: func(t *testing.T, result []*domain.BestSellerEntry) {
				assert.Len(t, result, 2)

				assert.Equal(t, 7, result[0].ProductID)
				assert.NotNil(t, result[0].Name)

				assert.Equal(t, 99, result[1].ProductID)
				assert.Equal(t, 5, result[1].QuantitySold)
				assert.Nil(t, result[1].Name)
				assert.Nil(t, result[1].SalePrice)
				assert.Nil(t, result[1].Codes)
			},
		},
		{
			name: "Sem vendas retorna lista vazia",
			setup: func() {
				mockBestSellerRepo.EXPECT().
					GetQuantitySoldByProduct().
					Return([]*domain.ProductQuantity{}, nil)

				mockProductRepo.EXPECT().
					GetByIDs([]int{}).
					Return([]*domain.Product{}, nil)
			},
			validate: func(t *testing.T, result []*domain.BestSellerEntry) {
				assert.Empty(t, result)
			},
		},
		{
			name: "Erro na soma de quantidades é propagado",
			setup: func() {
				mockBestSellerRepo.EXPECT().
					GetQuantitySoldByProduct().
					Return(nil, assert.AnError)
			},
			hasError: true,
		},
		{
			name: "Erro na busca de produtos é propagado",
			setup: func() {
				mockBestSellerRepo.EXPECT().
					GetQuantitySoldByProduct().
					Return([]*domain.ProductQuantity{{ProductID: 1, QuantitySold: 3}}, nil)

				mockProductRepo.EXPECT().
					GetByIDs([]int{1}).
					Return(nil, assert.AnError)
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.GetBestSellers()

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.validate != nil {
					tt.validate(t, result)
				}
			}
		})
	}
}

func TestBestSellerService_GetSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockBestSellerSnapshotRepository(ctrl)
	service := &BestSellerService{snapshotRepository: mockSnapshotRepo}

	lastUpdate := time.Date(2025, 4, 15, 3, 0, 0, 0, time.UTC)
	expected := &domain.BestSellerSnapshotResponse{
		Snapshot: []domain.BestSellerSnapshotItem{
			{ProductID: 1, ProductName: "Soda cola 355ml", QuantitySold: 50, Position: 1},
			{ProductID: 2, ProductName: "Papas fritas 45g", QuantitySold: 30, Position: 2},
		},
		LastUpdate: lastUpdate,
	}

	mockSnapshotRepo.EXPECT().GetSnapshot().Return(expected, nil)

	result, err := service.GetSnapshot()
	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}
