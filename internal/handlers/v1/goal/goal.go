package goal

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
	goalstore "github.com/carson-networks/finance-tracker/internal/storage/goal"
)

// Goal is the wire representation of a savings goal. Progress is derived and
// never stored.
type Goal struct {
	ID            string  `json:"id" doc:"Goal UUID"`
	UserID        string  `json:"userID" doc:"Owning user UUID"`
	Name          string  `json:"name" doc:"Goal name"`
	TargetAmount  string  `json:"targetAmount" doc:"Target decimal amount"`
	CurrentAmount string  `json:"currentAmount" doc:"Current decimal amount"`
	Deadline      string  `json:"deadline,omitempty" doc:"RFC3339 deadline, absent when none"`
	Progress      float64 `json:"progress" doc:"Completion percentage, 0 when the target is not positive"`
	CreatedAt     string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(g service.Goal) Goal {
	converted := Goal{
		ID:            g.ID.String(),
		UserID:        g.UserID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Progress:      g.Progress(),
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
	}
	if g.Deadline != nil {
		converted.Deadline = g.Deadline.Format(time.RFC3339)
	}
	return converted
}

func fromStorage(row *goalstore.Goal) Goal {
	return fromService(service.Goal{
		ID:            row.ID,
		UserID:        row.UserID,
		Name:          row.Name,
		TargetAmount:  row.TargetAmount,
		CurrentAmount: row.CurrentAmount,
		Deadline:      row.Deadline,
		CreatedAt:     row.CreatedAt,
	})
}
