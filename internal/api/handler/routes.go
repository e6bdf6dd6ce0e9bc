package handler

import (
	"net/http"

	"github.com/minimarket/backoffice-api/internal/api/handler/router"
	"github.com/minimarket/backoffice-api/internal/usecases/catalog"
	"github.com/minimarket/backoffice-api/internal/usecases/ranking"
	"github.com/minimarket/backoffice-api/internal/usecases/reporting"
	"github.com/minimarket/backoffice-api/internal/usecases/selling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Catalog(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/catalog/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(service),
		},
		{
			Path:    "/v1/catalog/products/without-codes",
			Method:  http.MethodGet,
			Handler: ListProductsWithoutCodes(service),
		},
		{
			Path:    "/v1/catalog/codes",
			Method:  http.MethodPost,
			Handler: AddProductCode(service),
		},
	}
}

func Reports(profitService reporting.ProfitReporter, rankingService ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/profit",
			Method:  http.MethodGet,
			Handler: GetProfitReport(profitService),
		},
		{
			Path:    "/v1/reports/best-sellers",
			Method:  http.MethodGet,
			Handler: GetBestSellers(rankingService),
		},
		{
			Path:    "/v1/reports/best-sellers/snapshot",
			Method:  http.MethodGet,
			Handler: GetBestSellerSnapshot(rankingService),
		},
	}
}

func Sales(service selling.SellingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
