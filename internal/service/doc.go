// Package service provides the service registry for backend providers.
//
// The registry maintains a catalog of service providers and routes tool
// execution to them. The HTTP and WebSocket surfaces resolve tools through
// it instead of holding provider references directly.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(navigationProvider)
//	result, err := registry.Execute(ctx, "navigation.validate", params, appCtx)
package service
