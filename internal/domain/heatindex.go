package domain

// Rothfusz regression coefficients (Fahrenheit, percent relative humidity).
const (
	c1 = -42.379
	c2 = 2.04901523
	c3 = 10.14333127
	c4 = -0.22475541
	c5 = -6.83783e-3
	c6 = -5.481717e-2
	c7 = 1.22874e-3
	c8 = 8.5282e-4
	c9 = -1.99e-6
)

// regressionThresholdF is the temperature below which the heat index equals
// the ambient temperature.
const regressionThresholdF = 80.0

// CelsiusToFahrenheit converts °C to °F.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts °F to °C.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// ComputeHeatIndex returns the heat index in °C for an air temperature in °C
// and a relative humidity in percent. Below 80 °F the input temperature is
// returned unchanged.
func ComputeHeatIndex(temperatureC, humidity float64) float64 {
	f := CelsiusToFahrenheit(temperatureC)
	if f < regressionThresholdF {
		return temperatureC
	}

	hi := 0.5 * (f + 61.0 + (f-68.0)*1.2 + humidity*0.094)
	if hi > regressionThresholdF {
		hi = rothfusz(f, humidity)
	}
	return FahrenheitToCelsius(hi)
}

func rothfusz(f, rh float64) float64 {
	return c1 +
		c2*f +
		c3*rh +
		c4*f*rh +
		c5*f*f +
		c6*rh*rh +
		c7*f*f*rh +
		c8*f*rh*rh +
		c9*f*f*rh*rh
}
