package service

import (
	"context"
	"testing"

	"github.com/surfgate/backend/internal/shared/types"
)

type mockProvider struct {
	id string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     types.CategoryNavigation,
		Capabilities: []string{"validate"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "object",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": "success"},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "test"}

	if err := r.Register(p); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, ok := r.Get("test"); !ok {
		t.Error("Service should be registered")
	}
}

func TestRegisterEmptyID(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&mockProvider{id: ""}); err == nil {
		t.Error("Expected error for empty service ID")
	}
}

func TestList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	services := r.List(nil)
	if len(services) != 2 {
		t.Errorf("Expected 2 services, got %d", len(services))
	}

	cat := types.CategoryNavigation
	filtered := r.List(&cat)
	if len(filtered) != 2 {
		t.Errorf("Expected 2 navigation services, got %d", len(filtered))
	}

	other := types.CategorySystem
	if got := r.List(&other); len(got) != 0 {
		t.Errorf("Expected 0 system services, got %d", len(got))
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	ctx := context.Background()
	result, err := r.Execute(ctx, "test.test", map[string]interface{}{}, nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Success {
		t.Error("Expected successful result")
	}
}

func TestExecuteUnknownService(t *testing.T) {
	r := NewRegistry()

	ctx := context.Background()
	result, err := r.Execute(ctx, "missing.tool", nil, nil)
	if err == nil {
		t.Error("Expected error for unknown service")
	}
	if result == nil || result.Success {
		t.Error("Expected failed result for unknown service")
	}
}

func TestExecuteBadToolID(t *testing.T) {
	r := NewRegistry()

	ctx := context.Background()
	if _, err := r.Execute(ctx, "no-dot", nil, nil); err == nil {
		t.Error("Expected error for tool ID without service prefix")
	}
}
