package goal

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "user_id", "name", "target_amount", "current_amount", "deadline", "created_at"}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID returns the goal with the given ID owned by userID, or nil when no
// such goal exists.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Goal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("goals"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Goal]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns all goals owned by the user in insertion order.
func (r *Reader) List(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("goals"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Goal]())
	if err != nil {
		return nil, err
	}

	result := make([]*Goal, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
