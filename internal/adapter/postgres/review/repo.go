// Package review implements the kanji review-item repository using PostgreSQL.
package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/kanjilens-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

const table = "review_items"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{
	"user_id", "kanji", "interval_days", "repetition", "ease_factor",
	"due_date", "last_reviewed_at", "version", "created_at", "updated_at",
}

// upsertSuffix overwrites the existing row only when it still carries the
// version the caller read. A stale write affects zero rows.
const upsertSuffix = `ON CONFLICT (user_id, kanji) DO UPDATE SET
	interval_days    = EXCLUDED.interval_days,
	repetition       = EXCLUDED.repetition,
	ease_factor      = EXCLUDED.ease_factor,
	due_date         = EXCLUDED.due_date,
	last_reviewed_at = EXCLUDED.last_reviewed_at,
	version          = review_items.version + 1,
	updated_at       = EXCLUDED.updated_at
WHERE review_items.version = ?
RETURNING user_id, kanji, interval_days, repetition, ease_factor, due_date, last_reviewed_at, version, created_at, updated_at`

// Repo provides review-item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review-item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Get returns the review item for (userID, kanji) or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, kanji string) (*domain.ReviewItem, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "kanji": kanji}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get review item: %w", err)
	}

	item, err := scanItem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "review item", key(userID, kanji))
	}
	return item, nil
}

// ListDue returns items whose due date is on or before today, oldest first.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, today time.Time, limit int) ([]domain.ReviewItem, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.LtOrEq{"due_date": today}).
		OrderBy("due_date ASC", "kanji ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list due: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "review items", userID.String())
	}
	defer rows.Close()

	items := make([]domain.ReviewItem, 0, limit)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, postgres.MapError(err, "review items", userID.String())
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "review items", userID.String())
	}
	return items, nil
}

// Stats aggregates all items of a user.
func (r *Repo) Stats(ctx context.Context, userID uuid.UUID, today time.Time) (domain.ReviewStats, error) {
	query, args, err := psql.Select().
		Column("count(*)").
		Column(squirrel.Expr("count(*) FILTER (WHERE due_date <= ?)", today)).
		Column("count(*) FILTER (WHERE repetition = 0)").
		Column("COALESCE(avg(ease_factor), 0)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return domain.ReviewStats{}, fmt.Errorf("build review stats: %w", err)
	}

	var s domain.ReviewStats
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).
		Scan(&s.Total, &s.DueToday, &s.Lapsed, &s.AverageEase)
	if err != nil {
		return domain.ReviewStats{}, postgres.MapError(err, "review stats", userID.String())
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Upsert inserts the item or overwrites the existing row for its key.
// The overwrite happens only while the stored version equals expectedVersion
// (0 when the caller saw no row). Otherwise it returns domain.ErrConflict and
// leaves the row untouched.
func (r *Repo) Upsert(ctx context.Context, item domain.ReviewItem, expectedVersion int64) (*domain.ReviewItem, error) {
	now := item.LastReviewedAt
	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			item.UserID, item.Kanji, item.Interval, item.Repetition, item.EaseFactor,
			item.DueDate, item.LastReviewedAt, int64(1), now, now,
		).
		Suffix(upsertSuffix, expectedVersion).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert review item: %w", err)
	}

	saved, err := scanItem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("review item %s: version %d is stale: %w",
			key(item.UserID, item.Kanji), expectedVersion, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, "review item", key(item.UserID, item.Kanji))
	}
	return saved, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.ReviewItem, error) {
	var it domain.ReviewItem
	err := row.Scan(
		&it.UserID, &it.Kanji, &it.Interval, &it.Repetition, &it.EaseFactor,
		&it.DueDate, &it.LastReviewedAt, &it.Version, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	it.DueDate = domain.CalendarDay(it.DueDate)
	return &it, nil
}

func key(userID uuid.UUID, kanji string) string {
	return userID.String() + "/" + kanji
}
