package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/minimarket/backoffice-api/internal/usecases/catalog"
	"github.com/minimarket/backoffice-api/pkg/apiErrors"
	"github.com/minimarket/backoffice-api/pkg/log"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListCategories retorna as categorias com seus produtos ordenados por preço
func ListCategories(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		categories, err := service.ListCategories()
		if err != nil {
			logger.WithError(err).Error("catalog: failed to list categories")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar categorias", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(categories); err != nil {
			logger.WithError(err).Error("catalog: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ListProductsWithoutCodes retorna os produtos sem código de barras agrupados por categoria
func ListProductsWithoutCodes(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		categories, err := service.ListProductsWithoutCodes()
		if err != nil {
			logger.WithError(err).Error("catalog: failed to list products without codes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos sem código", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(categories); err != nil {
			logger.WithError(err).Error("catalog: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

type addProductCodeRequest struct {
	Code      string `json:"code"`
	ProductID int    `json:"product_id"`
}

type addProductCodeResponse struct {
	Message string   `json:"message"`
	Codes   []string `json:"codes"`
}

// AddProductCode anexa um código de barras a um produto
func AddProductCode(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req addProductCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.Code == "" || req.ProductID == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos obrigatórios: code e product_id", nil)
			return
		}

		codes, err := service.AddProductCode(req.ProductID, req.Code)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
				return
			}

			logger.WithError(err).WithField("product_id", req.ProductID).
				Error("catalog: failed to add product code")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atribuir código ao produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(addProductCodeResponse{
			Message: "Código adicionado com sucesso",
			Codes:   codes,
		}); err != nil {
			logger.WithError(err).Error("catalog: failed to encode response")
		}
	})
}
