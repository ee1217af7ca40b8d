package history

import (
	"context"

	"github.com/dmitrijs2005/weatherhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, record *models.HistoryRecord) (*models.HistoryRecord, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.HistoryRecord, error)
}
