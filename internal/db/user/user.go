package user

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"

// DBTX is satisfied by both pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxUserRepository struct {
	db DBTX
}

func NewPgxRepository(db DBTX) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		string(input.Email),
		string(input.Name),
		string(input.PasswordHash),
		input.CreatedAt,
	)

	var id int64
	err = row.Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE {
		return u, user.ErrUserAlreadyExists
	}
	if err != nil {
		return u, err
	}

	return user.User{
		ID:           user.ID(id),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}, nil
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, created_at FROM "user" WHERE email = $1`,
		string(email),
	)
	return scanUser(row)
}

func (r *PgxUserRepository) GetByName(ctx context.Context, name user.Name) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, created_at FROM "user" WHERE name = $1`,
		string(name),
	)
	return scanUser(row)
}

func (r *PgxUserRepository) Exists(ctx context.Context, email c.Email) (bool, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM "user" WHERE email = $1)`,
		string(email),
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, email c.Email, password user.PasswordHash) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_hash = $2 WHERE email = $1`,
		string(email),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		email        string
		name         string
		passwordHash string
		createdAt    time.Time
	)
	err = row.Scan(&id, &email, &name, &passwordHash, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return user.User{
		ID:           user.ID(id),
		Email:        c.NewEmail(email),
		Name:         user.Name(name),
		PasswordHash: user.PasswordHash(passwordHash),
		CreatedAt:    createdAt,
	}, nil
}
