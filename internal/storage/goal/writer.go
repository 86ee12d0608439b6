package goal

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a new goal with a zero current amount and returns the
// persisted row.
func (w *Writer) Insert(ctx context.Context, create *GoalCreate) (*Goal, error) {
	q := psql.Insert(
		im.Into("goals", "user_id", "name", "target_amount", "deadline"),
		im.Values(psql.Arg(create.UserID, create.Name, create.TargetAmount, create.Deadline)),
		im.Returning(columns...),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Goal]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies the set fields of the update to the goal owned by userID and
// returns the number of rows affected, zero when no such goal exists.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, update *GoalUpdate) (int64, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("goals"),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if update.CurrentAmount.IsValue() {
		queryMods = append(queryMods, um.SetCol("current_amount").ToArg(update.CurrentAmount.MustGet()))
	}
	if update.TargetAmount.IsValue() {
		queryMods = append(queryMods, um.SetCol("target_amount").ToArg(update.TargetAmount.MustGet()))
	}
	if update.Deadline.IsValue() {
		queryMods = append(queryMods, um.SetCol("deadline").ToArg(update.Deadline.MustGet()))
	}

	result, err := bob.Exec(ctx, w.tx, psql.Update(queryMods...))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
