package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/weatherhub/internal/logging"
	"github.com/dmitrijs2005/weatherhub/internal/server/models"
	"github.com/dmitrijs2005/weatherhub/internal/server/repositories/history"
	"github.com/dmitrijs2005/weatherhub/internal/server/weather"
)

// WeatherService fetches current weather through the provider client and
// records each successful fetch in the caller's search history.
type WeatherService struct {
	client      weather.Client
	historyRepo history.Repository
	logger      logging.Logger
}

func NewWeatherService(client weather.Client, historyRepo history.Repository, logger logging.Logger) *WeatherService {
	return &WeatherService{
		client:      client,
		historyRepo: historyRepo,
		logger:      logger.With("module", "weather_service"),
	}
}

// GetWeather fetches the weather for location on behalf of userID and
// appends a history row. A failed history write is logged and swallowed:
// the already-fetched report is still returned to the caller.
func (s *WeatherService) GetWeather(ctx context.Context, userID int64, location string) (*models.WeatherReport, error) {

	report, err := s.client.Current(ctx, location)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("error serializing weather payload: %w", err)
	}

	record := &models.HistoryRecord{
		UserID:      userID,
		Location:    location,
		WeatherData: payload,
	}

	if _, err := s.historyRepo.Create(ctx, record); err != nil {
		s.logger.Error(ctx, "error saving search history", "user_id", userID, "location", location, "error", err.Error())
	}

	return report, nil
}

// History returns the caller's search history, newest first. The user id
// comes from a verified token only; there is no cross-user access path.
func (s *WeatherService) History(ctx context.Context, userID int64) ([]*models.HistoryRecord, error) {
	return s.historyRepo.ListByUser(ctx, userID)
}
