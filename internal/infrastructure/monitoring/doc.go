/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the backend
service, tracking HTTP requests, validation outcomes, WebSocket connections
and uptime.

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record validation outcomes
	metrics.RecordValidation("navigation.validate", "rejected", "PROTOCOL_NOT_ALLOWED", elapsed)

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics/prometheus", gin.WrapH(promhttp.Handler()))
*/
package monitoring
