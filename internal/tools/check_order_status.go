package tools

import (
	"context"
	"fmt"
)

// knownOrderID is the only order the mock backend knows about.
const knownOrderID = "ABC-123"

// CheckOrderStatusTool looks up an order by ID. Mock implementation standing
// in for a real order-management API.
func CheckOrderStatusTool() Tool {
	return Tool{
		Name:        "check_order_status",
		Description: "Look up the current status of a customer order by its order ID. Use this whenever the customer asks where their order is.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"order_id": map[string]interface{}{
					"type":        "string",
					"description": "The order identifier, e.g. 'ABC-123'",
				},
			},
			"required": []string{"order_id"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			orderID, _ := input["order_id"].(string)

			if orderID == knownOrderID {
				return fmt.Sprintf("Order %s is currently 'In Transit' and should arrive within 2 business days.", orderID), nil
			}
			return fmt.Sprintf("No order found with ID '%s'. Please double-check the order number.", orderID), nil
		},
	}
}
