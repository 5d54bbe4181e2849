package navigation

import (
	"context"
	"fmt"

	"github.com/surfgate/backend/internal/shared/types"
	"github.com/surfgate/backend/internal/urlcheck"
)

// Provider implements the navigation guard service
type Provider struct {
	validator *urlcheck.Validator
}

// New creates a navigation provider with its own validator.
func New() *Provider {
	return &Provider{validator: urlcheck.New()}
}

// NewWithValidator creates a provider around an existing validator.
func NewWithValidator(v *urlcheck.Validator) *Provider {
	return &Provider{validator: v}
}

// Validator returns the underlying pipeline, for surfaces that call it
// directly (the WebSocket handler does).
func (p *Provider) Validator() *urlcheck.Validator {
	return p.validator
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "navigation",
		Name:        "Navigation Guard",
		Description: "Validates and sanitizes address-bar input before navigation",
		Category:    types.CategoryNavigation,
		Capabilities: []string{
			"validate",
			"validate_batch",
		},
		Tools: []types.Tool{
			{
				ID:          "navigation.validate",
				Name:        "Validate URL",
				Description: "Decide whether input is a safe navigation target and return its canonical form",
				Parameters: []types.Parameter{
					{Name: "url", Type: "string", Description: "Address-bar input", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "navigation.validateBatch",
				Name:        "Validate URL Batch",
				Description: "Validate a list of inputs independently, preserving order",
				Parameters: []types.Parameter{
					{Name: "urls", Type: "array", Description: "Address-bar inputs", Required: true},
				},
				Returns: "array",
			},
		},
	}
}

// Execute runs a navigation tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "navigation.validate":
		return p.validate(params)
	case "navigation.validateBatch":
		return p.validateBatch(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) validate(params map[string]interface{}) (*types.Result, error) {
	result, verr := p.validator.Validate(params["url"])
	if verr != nil {
		return rejection(verr)
	}

	return success(map[string]interface{}{
		"valid":     result.Valid,
		"sanitized": result.Sanitized,
		"protocol":  result.Protocol,
	})
}

func (p *Provider) validateBatch(params map[string]interface{}) (*types.Result, error) {
	items, verr := p.validator.ValidateBatch(params["urls"])
	if verr != nil {
		return rejection(verr)
	}

	encoded := make([]interface{}, len(items))
	for i, item := range items {
		entry := map[string]interface{}{
			"url":    item.URL,
			"result": nil,
			"error":  nil,
		}
		if item.Result != nil {
			entry["result"] = map[string]interface{}{
				"valid":     item.Result.Valid,
				"sanitized": item.Result.Sanitized,
				"protocol":  item.Result.Protocol,
			}
		}
		if item.Error != nil {
			entry["error"] = map[string]interface{}{
				"code":    string(item.Error.Code),
				"message": item.Error.Message,
			}
		}
		encoded[i] = entry
	}

	return success(map[string]interface{}{
		"items": encoded,
		"count": len(encoded),
	})
}

// rejection maps a pipeline error onto a failed result that still carries
// the code and message, so the caller can branch without parsing text.
func rejection(verr *urlcheck.ValidationError) (*types.Result, error) {
	msg := verr.Error()
	return &types.Result{
		Success: false,
		Error:   &msg,
		Data: map[string]interface{}{
			"code":    string(verr.Code),
			"message": verr.Message,
		},
	}, nil
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	return &types.Result{Success: false, Error: &message}, nil
}
