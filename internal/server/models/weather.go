package models

// WeatherReport is the condensed view of a provider response that the API
// returns and the history recorder persists.
type WeatherReport struct {
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Condition   string  `json:"condition"`
}
