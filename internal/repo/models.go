package repo

import (
	"database/sql"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
)

type Action struct {
	ID         int64          `db:"id"`
	SuborderID int64          `db:"suborder_id"`
	Action     string         `db:"action"`
	ActorRole  string         `db:"actor_role"`
	ActorID    int64          `db:"actor_id"`
	FromStatus string         `db:"from_status"`
	ToStatus   sql.NullString `db:"to_status"`
	Outcome    string         `db:"outcome"`
	Error      sql.NullString `db:"error"`
	CreatedAt  time.Time      `db:"created_at"`
}

func ActionToEntity(a Action) entities.ActionRecord {
	return entities.ActionRecord{
		ID:         a.ID,
		SuborderID: a.SuborderID,
		Action:     a.Action,
		ActorRole:  entities.Role(a.ActorRole),
		ActorID:    a.ActorID,
		FromStatus: a.FromStatus,
		ToStatus:   a.ToStatus.String,
		Outcome:    entities.Outcome(a.Outcome),
		Error:      a.Error.String,
		CreatedAt:  a.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
