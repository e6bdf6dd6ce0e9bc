package scheduler

import (
	"testing"

	repomocks "github.com/minimarket/backoffice-api/infrastructure/repository/mocks"
	"github.com/minimarket/backoffice-api/internal/domain"
	rankingmocks "github.com/minimarket/backoffice-api/internal/usecases/ranking/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBestSellerSnapshotService_UpdateSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRankingService := rankingmocks.NewMockRankingService(ctrl)
	mockSnapshotRepo := repomocks.NewMockBestSellerSnapshotRepository(ctrl)

	service := &BestSellerSnapshotService{
		rankingService: mockRankingService,
		snapshotRepo:   mockSnapshotRepo,
	}

	tests := []struct {
		name     string
		setup    func()
		hasError bool
	}{
		{
			name: "Ranking vivo vira itens posicionados na ordem de chegada",
			setup: func() {
				name1 := "Soda cola 355ml"
				name2 := "Papas fritas 45g"

				mockRankingService.EXPECT().
					GetBestSellers().
					Return([]*domain.BestSellerEntry{
						{ProductID: 1, Name: &name1, QuantitySold: 50},
						{ProductID: 2, Name: &name2, QuantitySold: 30},
						{ProductID: 99, Name: nil, QuantitySold: 10},
					}, nil)

				mockSnapshotRepo.EXPECT().
					SaveOrUpdateSnapshot(gomock.Any()).
					DoAndReturn(func(items []*domain.BestSellerSnapshotItem) error {
						assert.Len(t, items, 3)

						assert.Equal(t, 1, items[0].ProductID)
						assert.Equal(t, "Soda cola 355ml", items[0].ProductName)
						assert.Equal(t, 1, items[0].Position)

						assert.Equal(t, 2, items[1].Position)

						// Produto sem metadados entra com nome vazio
						assert.Equal(t, 99, items[2].ProductID)
						assert.Equal(t, "", items[2].ProductName)
						assert.Equal(t, 3, items[2].Position)

						return nil
					})
			},
		},
		{
			name: "Sem vendas o snapshot anterior é mantido",
			setup: func() {
				// Nenhuma chamada a SaveOrUpdateSnapshot é esperada
				mockRankingService.EXPECT().
					GetBestSellers().
					Return([]*domain.BestSellerEntry{}, nil)
			},
		},
		{
			name: "Erro ao calcular o ranking é propagado",
			setup: func() {
				mockRankingService.EXPECT().
					GetBestSellers().
					Return(nil, assert.AnError)
			},
			hasError: true,
		},
		{
			name: "Erro ao salvar o snapshot é propagado",
			setup: func() {
				name1 := "Agua 600ml"

				mockRankingService.EXPECT().
					GetBestSellers().
					Return([]*domain.BestSellerEntry{
						{ProductID: 1, Name: &name1, QuantitySold: 5},
					}, nil)

				mockSnapshotRepo.EXPECT().
					SaveOrUpdateSnapshot(gomock.Any()).
					Return(assert.AnError)
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.UpdateSnapshot()

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBestSellerSnapshotService_UpdateSnapshotMarksTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRankingService := rankingmocks.NewMockRankingService(ctrl)
	mockSnapshotRepo := repomocks.NewMockBestSellerSnapshotRepository(ctrl)

	service := &BestSellerSnapshotService{
		rankingService: mockRankingService,
		snapshotRepo:   mockSnapshotRepo,
	}

	mockRankingService.EXPECT().GetBestSellers().Return([]*domain.BestSellerEntry{}, nil)

	assert.True(t, service.lastSyncStartedAt.IsZero())

	err := service.UpdateSnapshot()
	assert.NoError(t, err)

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)

	status := service.GetStatus()
	assert.Contains(t, status, "last_sync_started_at")
	assert.Contains(t, status, "last_sync_completed_at")
}
