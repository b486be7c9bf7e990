package tools

import (
	"context"
	"fmt"
	"strings"
)

// BookAppointmentTool books a service appointment. Mock implementation: it
// confirms anything except services mentioning "urgent", which the studio
// only handles by phone.
func BookAppointmentTool() Tool {
	return Tool{
		Name:        "book_appointment",
		Description: "Book an appointment for a service on a given date. Use this whenever the customer asks to schedule, book or reserve a service.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"date": map[string]interface{}{
					"type":        "string",
					"description": "The requested date, as the customer phrased it (e.g. 'next Tuesday')",
				},
				"service": map[string]interface{}{
					"type":        "string",
					"description": "The service to book (e.g. 'haircut')",
				},
			},
			"required": []string{"date", "service"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			date, _ := input["date"].(string)
			service, _ := input["service"].(string)

			if strings.Contains(strings.ToLower(service), "urgent") {
				return fmt.Sprintf("Booking declined: urgent requests such as '%s' cannot be scheduled online. Please call the studio directly.", service), nil
			}
			return fmt.Sprintf("Appointment confirmed for '%s' on %s. We look forward to seeing you!", service, date), nil
		},
	}
}
