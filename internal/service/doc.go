// Package service orchestrates the heat risk domain with its adapters:
// weather lookups, synthetic dashboards, and stored submissions.
package service
