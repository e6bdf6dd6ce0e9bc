package ranking

import (
	"github.com/minimarket/backoffice-api/infrastructure/repository"
	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type RankingService interface {
	// GetBestSellers calcula o relatório de mais vendidos ao vivo: as somas de
	// quantidade por produto enriquecidas com os metadados de cada produto
	GetBestSellers() ([]*domain.BestSellerEntry, error)

	// GetSnapshot retorna o último snapshot persistido pela sincronização diária
	GetSnapshot() (*domain.BestSellerSnapshotResponse, error)
}

type BestSellerService struct {
	bestSellerRepository repository.BestSellerRepository
	productRepository    repository.ProductRepository
	snapshotRepository   repository.BestSellerSnapshotRepository
}

func NewBestSellerService(
	bestSellerRepo repository.BestSellerRepository,
	productRepo repository.ProductRepository,
	snapshotRepo repository.BestSellerSnapshotRepository,
) RankingService {
	return &BestSellerService{
		bestSellerRepository: bestSellerRepo,
		productRepository:    productRepo,
		snapshotRepository:   snapshotRepo,
	}
}

// GetBestSellers preserva a ordem das somas como veio da fonte (decrescente
// por quantidade, empates na ordem estável da fonte). Um produto sem metadados
// produz uma entrada com campos nulos em vez de falhar
func (s *BestSellerService) GetBestSellers() ([]*domain.BestSellerEntry, error) {
	sums, err := s.bestSellerRepository.GetQuantitySoldByProduct()
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(sums))
	for _, sum := range sums {
		ids = append(ids, sum.ProductID)
	}

	products, err := s.productRepository.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[int]*domain.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	entries := make([]*domain.BestSellerEntry, 0, len(sums))
	for _, sum := range sums {
		entry := &domain.BestSellerEntry{
			ProductID:    sum.ProductID,
			QuantitySold: sum.QuantitySold,
		}

		if product, ok := productsByID[sum.ProductID]; ok {
			name := product.Name
			salePrice := product.SalePrice
			entry.Name = &name
			entry.SalePrice = &salePrice
			entry.Codes = product.Codes
		} else {
			logrus.WithField("product_id", sum.ProductID).
				Warn("Produto presente nas vendas mas ausente no catálogo")
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *BestSellerService) GetSnapshot() (*domain.BestSellerSnapshotResponse, error) {
	snapshot, err := s.snapshotRepository.GetSnapshot()
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
