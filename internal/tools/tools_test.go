package tools_test

import (
	"context"
	"strings"
	"testing"

	"github.com/conciergeai/conciergeai/internal/tools"
)

// ─── book_appointment ─────────────────────────────────────────────────────────

func TestBookAppointmentConfirms(t *testing.T) {
	reg := tools.DefaultRegistry()

	result, found := reg.Execute(context.Background(), "book_appointment", map[string]interface{}{
		"date":    "next Tuesday",
		"service": "haircut",
	})
	if !found {
		t.Fatal("book_appointment should be registered")
	}
	if !strings.Contains(result, "haircut") || !strings.Contains(result, "next Tuesday") {
		t.Errorf("confirmation should name service and date, got %q", result)
	}
	if !strings.Contains(result, "confirmed") {
		t.Errorf("expected a confirmation, got %q", result)
	}
}

func TestBookAppointmentDeniesUrgent(t *testing.T) {
	reg := tools.DefaultRegistry()

	for _, service := range []string{"urgent repair", "URGENT coloring", "Urgent fix"} {
		result, found := reg.Execute(context.Background(), "book_appointment", map[string]interface{}{
			"date":    "Friday",
			"service": service,
		})
		if !found {
			t.Fatal("book_appointment should be registered")
		}
		if strings.Contains(result, "confirmed") {
			t.Errorf("urgent service %q should be denied, got %q", service, result)
		}
	}
}

// ─── check_order_status ───────────────────────────────────────────────────────

func TestCheckOrderStatusKnownOrder(t *testing.T) {
	reg := tools.DefaultRegistry()

	result, found := reg.Execute(context.Background(), "check_order_status", map[string]interface{}{
		"order_id": "ABC-123",
	})
	if !found {
		t.Fatal("check_order_status should be registered")
	}
	if !strings.Contains(result, "'In Transit'") || !strings.Contains(result, "ABC-123") {
		t.Errorf("expected in-transit status for ABC-123, got %q", result)
	}
}

func TestCheckOrderStatusUnknownOrder(t *testing.T) {
	reg := tools.DefaultRegistry()

	result, _ := reg.Execute(context.Background(), "check_order_status", map[string]interface{}{
		"order_id": "XYZ-999",
	})
	if !strings.Contains(result, "No order found") || !strings.Contains(result, "XYZ-999") {
		t.Errorf("expected not-found message naming the ID, got %q", result)
	}
}

// ─── Registry ─────────────────────────────────────────────────────────────────

func TestRegistryUnknownTool(t *testing.T) {
	reg := tools.DefaultRegistry()

	result, found := reg.Execute(context.Background(), "nonexistent_tool", map[string]interface{}{})
	if found {
		t.Error("nonexistent_tool should not be found")
	}
	if result != "" {
		t.Errorf("unknown tool should yield empty result, got %q", result)
	}
}

func TestRegistryListOrder(t *testing.T) {
	reg := tools.DefaultRegistry()

	list := reg.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(list))
	}
	if list[0].Name != "book_appointment" || list[1].Name != "check_order_status" {
		t.Errorf("registration order not preserved: %s, %s", list[0].Name, list[1].Name)
	}
	for _, tool := range list {
		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
		if _, ok := tool.InputSchema["properties"]; !ok {
			t.Errorf("tool %s schema has no properties", tool.Name)
		}
	}
}

func TestRegistryMissingArgumentsAreSafe(t *testing.T) {
	reg := tools.DefaultRegistry()

	// Handlers must tolerate absent or mistyped fields.
	result, found := reg.Execute(context.Background(), "check_order_status", map[string]interface{}{})
	if !found {
		t.Fatal("check_order_status should be registered")
	}
	if !strings.Contains(result, "No order found") {
		t.Errorf("missing order_id should read as not found, got %q", result)
	}

	result, _ = reg.Execute(context.Background(), "book_appointment", map[string]interface{}{
		"date": 42, "service": nil,
	})
	if result == "" {
		t.Error("mistyped arguments should still produce a result string")
	}
}
