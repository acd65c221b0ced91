// Package tracing integrates OpenTelemetry with idmint so that identifier
// allocation, registry loads and flushes show up as spans. Spans are no-ops
// until Init or InitWithExporter installs a provider.
package tracing
