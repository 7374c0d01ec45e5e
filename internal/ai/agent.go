package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"inventory-pos/internal/service"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Agent answers admin questions about inventory, events and sales by
// letting the model call read-only tools backed by the services.
type Agent struct {
	products *service.ProductService
	events   *service.EventService
	sales    *service.SaleService
}

func NewAgent(products *service.ProductService, events *service.EventService, sales *service.SaleService) *Agent {
	return &Agent{products: products, events: events, sales: sales}
}

func (a *Agent) Run(userMessage string, apiKey string) (string, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	today := time.Now().Format("2006-01-02")
	systemPrompt := fmt.Sprintf(`SYSTEM: Today is %s. You are the assistant for a market-stand inventory and sales system.

RULES:
1. INVENTORY: For questions about products, prices or stock, call 'check_inventory' and read the JSON to answer. Do NOT say you cannot get a price.
2. EVENTS: For questions about markets or fairs, call 'list_events' first to find the event and its ID.
3. STATISTICS: For questions about how an event went (sales count, revenue, payment methods, top sellers), find the event ID via 'list_events', then call 'get_event_statistics'.
4. REVENUE: For overall revenue over a date range, use 'get_sales_report'.

USER: %s`, today, userMessage)

	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "check_inventory",
					Description: "Get the full product list with ID, name, category, brand, price and stock.",
				},
				{
					Name:        "list_events",
					Description: "List all sales events with their ID, name, location and dates.",
				},
				{
					Name:        "get_event_statistics",
					Description: "Get the sales statistics for one event: totals, payment methods and top sellers.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"event_id": {Type: genai.TypeInteger, Description: "ID of the event"},
						},
						Required: []string{"event_id"},
					},
				},
				{
					Name:        "get_sales_report",
					Description: "Get total sales revenue for a date range.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"start_date": {Type: genai.TypeString, Description: "Start date (YYYY-MM-DD)"},
							"end_date":   {Type: genai.TypeString, Description: "End date (YYYY-MM-DD)"},
						},
						Required: []string{"start_date", "end_date"},
					},
				},
			},
		},
	}

	session := model.StartChat()

	resp, err := session.SendMessage(ctx, genai.Text(systemPrompt))
	if err != nil {
		return "", err
	}

	// One round of tool calls is enough for these read-only tools;
	// after answering a call we let the model chain once more.
	for depth := 0; depth < 4; depth++ {
		funcCall, ok := firstFunctionCall(resp)
		if !ok {
			break
		}
		toolResp, err := a.executeTool(funcCall)
		if err != nil {
			return "", err
		}
		resp, err = session.SendMessage(ctx, toolResp)
		if err != nil {
			return "", err
		}
	}

	return printResponse(resp), nil
}

func firstFunctionCall(resp *genai.GenerateContentResponse) (genai.FunctionCall, bool) {
	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			return funcCall, true
		}
	}
	return genai.FunctionCall{}, false
}

func (a *Agent) executeTool(funcCall genai.FunctionCall) (genai.FunctionResponse, error) {
	switch funcCall.Name {
	case "check_inventory":
		return a.checkInventory()
	case "list_events":
		return a.listEvents()
	case "get_event_statistics":
		return a.eventStatistics(funcCall.Args)
	case "get_sales_report":
		return a.salesReport(funcCall.Args)
	}
	return genai.FunctionResponse{
		Name:     funcCall.Name,
		Response: map[string]interface{}{"error": "unknown tool"},
	}, nil
}

func (a *Agent) checkInventory() (genai.FunctionResponse, error) {
	products, err := a.products.FindAll()
	if err != nil {
		return genai.FunctionResponse{}, err
	}

	type row struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
		Brand    string `json:"brand"`
		Price    string `json:"price"`
		Stock    int    `json:"stock"`
	}
	rows := make([]row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Brand:    p.Brand,
			Price:    p.Price.StringFixed(2),
			Stock:    p.Stock,
		})
	}
	jsonBytes, _ := json.Marshal(rows)

	return genai.FunctionResponse{
		Name:     "check_inventory",
		Response: map[string]interface{}{"inventory": string(jsonBytes)},
	}, nil
}

func (a *Agent) listEvents() (genai.FunctionResponse, error) {
	events, err := a.events.FindAll()
	if err != nil {
		return genai.FunctionResponse{}, err
	}

	type row struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Location string `json:"location"`
		Start    string `json:"start_date"`
		End      string `json:"end_date"`
		Active   bool   `json:"active"`
	}
	rows := make([]row, 0, len(events))
	for _, e := range events {
		rows = append(rows, row{
			ID:       e.ID,
			Name:     e.Name,
			Location: e.Location,
			Start:    e.StartDate.Format("2006-01-02"),
			End:      e.EndDate.Format("2006-01-02"),
			Active:   e.IsActive,
		})
	}
	jsonBytes, _ := json.Marshal(rows)

	return genai.FunctionResponse{
		Name:     "list_events",
		Response: map[string]interface{}{"events": string(jsonBytes)},
	}, nil
}

func (a *Agent) eventStatistics(args map[string]any) (genai.FunctionResponse, error) {
	id, ok := args["event_id"].(float64)
	if !ok {
		return genai.FunctionResponse{
			Name:     "get_event_statistics",
			Response: map[string]interface{}{"error": "event_id is required"},
		}, nil
	}
	stats, err := a.sales.EventStatistics(uint(id))
	if err != nil {
		return genai.FunctionResponse{
			Name:     "get_event_statistics",
			Response: map[string]interface{}{"error": err.Error()},
		}, nil
	}
	jsonBytes, _ := json.Marshal(stats)

	return genai.FunctionResponse{
		Name:     "get_event_statistics",
		Response: map[string]interface{}{"statistics": string(jsonBytes)},
	}, nil
}

func (a *Agent) salesReport(args map[string]any) (genai.FunctionResponse, error) {
	startStr, _ := args["start_date"].(string)
	endStr, _ := args["end_date"].(string)

	start, err1 := time.Parse("2006-01-02", startStr)
	end, err2 := time.Parse("2006-01-02", endStr)
	if err1 != nil || err2 != nil {
		return genai.FunctionResponse{
			Name:     "get_sales_report",
			Response: map[string]interface{}{"error": "dates must be in YYYY-MM-DD format"},
		}, nil
	}
	end = end.Add(23*time.Hour + 59*time.Minute)

	report, err := a.sales.RevenueBetween(start, end)
	if err != nil {
		return genai.FunctionResponse{}, err
	}

	return genai.FunctionResponse{
		Name: "get_sales_report",
		Response: map[string]interface{}{
			"revenue":     report.TotalRevenue.StringFixed(2),
			"sales_count": report.TotalSales,
		},
	}, nil
}

func printResponse(resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return "I completed the action."
}
