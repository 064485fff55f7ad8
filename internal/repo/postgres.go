package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// journalRepo stores attempted suborder actions and tracking push outcomes.
// Rider coordinates are never written.
type journalRepo struct {
	db        *sqlx.DB
	txManager trm.Manager
	qb        sq.StatementBuilderType
}

func NewJournalRepo(db *sqlx.DB, txManager trm.Manager) *journalRepo {
	return &journalRepo{
		db:        db,
		txManager: txManager,
		qb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *journalRepo) SaveAction(ctx context.Context, rec entities.ActionRecord) error {
	query, args := r.qb.Insert("handoff_actions").
		Columns(
			"suborder_id", "action", "actor_role", "actor_id",
			"from_status", "to_status", "outcome", "error", "created_at",
		).
		Values(
			rec.SuborderID, rec.Action, string(rec.ActorRole), rec.ActorID,
			rec.FromStatus, nullString(rec.ToStatus), string(rec.Outcome), nullString(rec.Error), rec.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert action: %w", err)
	}
	return nil
}

func (r *journalRepo) ListActions(ctx context.Context, suborderID int64) ([]entities.ActionRecord, error) {
	query, args := r.qb.Select(
		"id", "suborder_id", "action", "actor_role", "actor_id",
		"from_status", "to_status", "outcome", "error", "created_at").
		From("handoff_actions").
		Where(sq.Eq{"suborder_id": suborderID}).
		OrderBy("created_at", "id").
		MustSql()

	var rows []Action
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select actions: %w", err)
	}

	recs := make([]entities.ActionRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, ActionToEntity(row))
	}
	return recs, nil
}

// SavePushes appends push outcomes and updates the per-suborder tracking state in one transaction.
func (r *journalRepo) SavePushes(ctx context.Context, recs []entities.PushRecord) error {
	if len(recs) == 0 {
		return nil
	}

	return r.txManager.Do(ctx, func(ctx context.Context) error {
		insert := r.qb.Insert("tracking_pushes").Columns("rider_id", "suborder_id", "ok", "error", "pushed_at")
		for _, rec := range recs {
			insert = insert.Values(rec.RiderID, rec.SuborderID, rec.OK, nullString(rec.Error), rec.PushedAt)
		}
		query, args := insert.MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert pushes: %w", err)
		}

		for _, rec := range recs {
			if err := r.upsertState(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *journalRepo) upsertState(ctx context.Context, rec entities.PushRecord) error {
	var q sq.InsertBuilder
	if rec.OK {
		q = r.qb.Insert("tracking_state").
			Columns("suborder_id", "rider_id", "last_ok_at", "last_error", "failures", "updated_at").
			Values(rec.SuborderID, rec.RiderID, rec.PushedAt, nil, 0, rec.PushedAt).
			Suffix(`ON CONFLICT (suborder_id) DO UPDATE SET
				rider_id = EXCLUDED.rider_id,
				last_ok_at = EXCLUDED.last_ok_at,
				last_error = NULL,
				failures = 0,
				updated_at = EXCLUDED.updated_at`)
	} else {
		q = r.qb.Insert("tracking_state").
			Columns("suborder_id", "rider_id", "last_error", "failures", "updated_at").
			Values(rec.SuborderID, rec.RiderID, rec.Error, 1, rec.PushedAt).
			Suffix(`ON CONFLICT (suborder_id) DO UPDATE SET
				rider_id = EXCLUDED.rider_id,
				last_error = EXCLUDED.last_error,
				failures = tracking_state.failures + 1,
				updated_at = EXCLUDED.updated_at`)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert tracking state: %w", err)
	}
	return nil
}

func (r *journalRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *journalRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
