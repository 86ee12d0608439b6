package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// GoalService handles goal read logic. Creation and progress updates go
// through the operator's write pipeline.
type GoalService struct {
	reader *storage.Reader
}

// NewGoalService creates a new GoalService.
func NewGoalService(reader *storage.Reader) *GoalService {
	return &GoalService{reader: reader}
}

// ListGoals returns all goals owned by the user.
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	rows, err := s.reader.Goals.List(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "ListGoals", EntityID: userID.String(), Err: err}
	}

	converted := make([]Goal, len(rows))
	for i, row := range rows {
		converted[i] = goalFromStorage(row)
	}
	return converted, nil
}
