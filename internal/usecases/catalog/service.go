package catalog

import (
	"github.com/minimarket/backoffice-api/infrastructure/repository"
	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrProductNotFound indica um id de produto inexistente no catálogo
var ErrProductNotFound = errors.New("produto não encontrado")

type CatalogService interface {
	// ListCategories retorna as categorias com seus produtos ordenados por
	// preço de venda crescente
	ListCategories() ([]*domain.Category, error)

	// ListProductsWithoutCodes retorna os produtos sem código de barras,
	// agrupados por categoria em ordem alfabética
	ListProductsWithoutCodes() ([]*domain.Category, error)

	// AddProductCode anexa um código de barras ao produto, sem duplicar
	// códigos já atribuídos. Retorna a lista atualizada de códigos
	AddProductCode(productID int, code string) ([]string, error)
}

type Service struct {
	categoryRepository repository.CategoryRepository
	productRepository  repository.ProductRepository
}

func NewService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) CatalogService {
	return &Service{
		categoryRepository: categoryRepo,
		productRepository:  productRepo,
	}
}

func (s *Service) ListCategories() ([]*domain.Category, error) {
	categories, err := s.categoryRepository.ListWithProducts()
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Service) ListProductsWithoutCodes() ([]*domain.Category, error) {
	categories, err := s.categoryRepository.ListWithProductsWithoutCodes()
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Service) AddProductCode(productID int, code string) ([]string, error) {
	product, err := s.productRepository.GetByID(productID)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, errors.Wrapf(ErrProductNotFound, "id %d", productID)
	}

	codes := product.Codes
	if codes == nil {
		codes = []string{}
	}

	// Anexar apenas se ainda não existe
	for _, existing := range codes {
		if existing == code {
			return codes, nil
		}
	}

	codes = append(codes, code)

	if err := s.productRepository.UpdateCodes(productID, codes); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"code":       code,
	}).Info("Código de barras atribuído ao produto")

	return codes, nil
}
