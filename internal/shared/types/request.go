package types

// ValidateRequest carries one address-bar input to the validation surface.
// URL is loosely typed so the pipeline's own type gate decides, instead of
// the JSON binder rejecting with an untyped 400.
type ValidateRequest struct {
	URL interface{} `json:"url"`
}

// ValidateBatchRequest carries a batch of inputs. URLs is loosely typed for
// the same reason: "not an array" is a pipeline-owned error.
type ValidateBatchRequest struct {
	URLs interface{} `json:"urls"`
}

// ExecuteRequest invokes a registered service tool by ID.
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id"`
	Params map[string]interface{} `json:"params"`
	AppID  *string                `json:"app_id,omitempty"`
}

// WSMessage represents a WebSocket message. ID is an optional client
// correlation token echoed back on the response.
type WSMessage struct {
	Type string      `json:"type"`
	ID   string      `json:"id,omitempty"`
	URL  interface{} `json:"url,omitempty"`
	URLs interface{} `json:"urls,omitempty"`
}
