package handlers

import (
	"net/http"
	"sort"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gblcortedobra/services"
)

// HandleMaterialList serves the rate table the order form prices against.
func HandleMaterialList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rates, err := services.LoadRateTable(app)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao buscar materiais", err)
		}

		result := make([]services.MaterialRate, 0, len(rates))
		for _, rate := range rates {
			result = append(result, rate)
		}
		sort.Slice(result, func(i, j int) bool {
			return result[i].Name < result[j].Name
		})
		return e.JSON(http.StatusOK, result)
	}
}
