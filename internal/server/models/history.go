package models

import (
	"encoding/json"
	"time"
)

// HistoryRecord is one row of a user's weather search history. WeatherData
// holds the serialized provider payload exactly as it was returned to the
// user at search time.
type HistoryRecord struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Location        string          `json:"location"`
	WeatherData     json.RawMessage `json:"weather_data"`
	SearchTimestamp time.Time       `json:"search_timestamp"`
}
