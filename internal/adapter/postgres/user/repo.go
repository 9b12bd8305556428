// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/kanjilens-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const userColumns = `id, email, username, password_hash, google_sub, created_at, updated_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const getByGoogleSubSQL = `SELECT ` + userColumns + ` FROM users WHERE google_sub = $1`

const createSQL = `
INSERT INTO users (id, email, username, password_hash, google_sub, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

const linkGoogleSQL = `
UPDATE users SET google_sub = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// GetByEmail returns a user by normalized email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// GetByGoogleSub returns the user linked to a Google account subject.
func (r *Repo) GetByGoogleSub(ctx context.Context, sub string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByGoogleSubSQL, sub))
	if err != nil {
		return nil, postgres.MapError(err, "user", "google:"+sub)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted row.
// A duplicate email or Google subject yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		u.ID, u.Email, u.Username, u.PasswordHash, u.GoogleSub, u.CreatedAt, u.UpdatedAt,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// LinkGoogle attaches a Google subject to an existing user.
func (r *Repo) LinkGoogle(ctx context.Context, id uuid.UUID, sub string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, linkGoogleSQL, id, sub))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.GoogleSub, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
