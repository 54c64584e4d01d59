package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gblcortedobra/services"
)

// HandleSalesByMonth serves the monthly aggregation behind the sales
// chart.
func HandleSalesByMonth(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sales, err := services.SalesByMonth(app)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao buscar dados de vendas por mês", err)
		}
		return e.JSON(http.StatusOK, sales)
	}
}

// HandleLowStockProducts serves the restock warning list.
func HandleLowStockProducts(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		products, err := services.LowStockProducts(app)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao buscar produtos com estoque baixo", err)
		}
		return e.JSON(http.StatusOK, products)
	}
}
