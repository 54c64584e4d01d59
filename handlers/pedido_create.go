package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gblcortedobra/services"
)

type pedidoRequest struct {
	ClienteID   string `json:"cliente_id"`
	Material    string `json:"material"`
	Espessura   string `json:"espessura"`
	Largura     string `json:"largura"`
	Comprimento string `json:"comprimento"`
	Quantidade  string `json:"quantidade"`
	Observacoes string `json:"observacoes"`
	Status      string `json:"status"`
}

type pedidoInput struct {
	clientID  string
	material  string
	thickness string
	widthMm   float64
	lengthMm  float64
	quantity  int
	notes     string
	status    string
}

// parsePedidoRequest validates the form payload. Dimension fields accept
// the comma decimal separator the SPA's inputs produce.
func parsePedidoRequest(req pedidoRequest) (*pedidoInput, error) {
	if req.ClienteID == "" || req.Material == "" || req.Largura == "" || req.Comprimento == "" || req.Quantidade == "" {
		return nil, fmt.Errorf("Cliente, material, dimensões e quantidade são obrigatórios")
	}

	width, err := strconv.ParseFloat(strings.ReplaceAll(req.Largura, ",", "."), 64)
	if err != nil || width <= 0 {
		return nil, fmt.Errorf("Largura inválida")
	}
	length, err := strconv.ParseFloat(strings.ReplaceAll(req.Comprimento, ",", "."), 64)
	if err != nil || length <= 0 {
		return nil, fmt.Errorf("Comprimento inválido")
	}
	quantity, err := strconv.Atoi(req.Quantidade)
	if err != nil || quantity <= 0 {
		return nil, fmt.Errorf("Quantidade inválida")
	}

	return &pedidoInput{
		clientID:  req.ClienteID,
		material:  req.Material,
		thickness: req.Espessura,
		widthMm:   width,
		lengthMm:  length,
		quantity:  quantity,
		notes:     req.Observacoes,
		status:    req.Status,
	}, nil
}

// HandlePedidoCreate registers a new order. The value is computed here
// from the current rate table and frozen; later rate changes never
// reprice it. On success the full payload is pushed to the automation
// webhook, fire and forget.
func HandlePedidoCreate(app *pocketbase.PocketBase, notifier *services.WebhookNotifier) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req pedidoRequest
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Requisição inválida", err)
		}

		input, err := parsePedidoRequest(req)
		if err != nil {
			return apiMessage(e, http.StatusBadRequest, err.Error())
		}

		if _, err := app.FindRecordById("clients", input.clientID); err != nil {
			return apiError(e, http.StatusBadRequest, "Cliente não encontrado", err)
		}

		rates, err := services.LoadRateTable(app)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao calcular valor do pedido", err)
		}
		value := services.ComputeOrderValue(input.material, input.widthMm, input.lengthMm, input.quantity, rates)

		number, err := services.NextOrderNumber(app)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao gerar número do pedido", err)
		}

		col, err := app.FindCollectionByNameOrId("orders")
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao adicionar pedido", err)
		}

		record := core.NewRecord(col)
		record.Set("order_number", number)
		record.Set("client", input.clientID)
		setPedidoFields(record, input)
		record.Set("value", services.FormatAmount(value))
		if input.status == "" {
			record.Set("status", "Aguardando")
		}

		if err := app.Save(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao adicionar pedido", err)
		}

		payload := orderJSON(app, record)
		notifier.NotifyOrderCreated(payload)

		return e.JSON(http.StatusCreated, map[string]any{
			"message": "Pedido adicionado com sucesso!",
			"pedido":  payload,
		})
	}
}

func setPedidoFields(record *core.Record, input *pedidoInput) {
	record.Set("material", input.material)
	record.Set("thickness", input.thickness)
	record.Set("width", input.widthMm)
	record.Set("length", input.lengthMm)
	record.Set("quantity", input.quantity)
	record.Set("observations", input.notes)
	if input.status != "" {
		record.Set("status", input.status)
	}
}
