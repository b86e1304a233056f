// Package domain models heat-stress risk: the heat index derived from air
// temperature and relative humidity, the risk tier it falls into, and the
// static guidance published for each tier.
//
// # Heat Index
//
// The heat index is an empirical "feels-like" temperature. It is computed in
// Fahrenheit and converted back to Celsius:
//
//	F = C*9/5 + 32
//	F < 80           → heat index is the ambient temperature (regression not valid)
//	HI = 0.5*(F + 61 + (F-68)*1.2 + RH*0.094)      first-order estimate
//	HI > 80          → Rothfusz regression replaces the estimate
//
// The Rothfusz regression is the nine-term polynomial published by the NWS:
//
//	HI = -42.379 + 2.04901523F + 10.14333127RH - 0.22475541F·RH
//	     - 6.83783e-3F² - 5.481717e-2RH² + 1.22874e-3F²RH
//	     + 8.5282e-4F·RH² - 1.99e-6F²RH²
//
// No adjustment terms are applied for very low or very high humidity.
//
// # Risk Tiers
//
// Tiers are evaluated on the heat index in Celsius, highest first:
//
//	≥ 40 extreme | ≥ 35 high | ≥ 30 moderate | otherwise low
//
// The thresholds partition the real line into four half-open intervals. They
// live in one place ([ClassifyRisk]) so they can be revised without touching
// callers.
//
// # Input Policy
//
// [ComputeHeatIndex] and [ClassifyRisk] are total over finite inputs and never
// fail. Validation happens once, at [NewReading]: non-finite temperature or
// humidity, and humidity outside [0, 100], are rejected with [ErrInvalidInput]
// so a NaN never reaches a response body.
//
// # Guidance Tables
//
// Recommendations are keyed by tier and audience (personal, community,
// infrastructure). Strategy cards are keyed by horizon (immediate, shortTerm,
// longTerm) and list the tiers they apply to. All tables are package-level
// values that are never mutated; accessors hand out copies.
package domain
