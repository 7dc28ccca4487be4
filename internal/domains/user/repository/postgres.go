package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewdb-backend/internal/domains/user"
	"reviewdb-backend/internal/shared/access"
)

const userColumns = `id, username, email, first_name, last_name, bio, role, is_superuser, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		INSERT INTO users (username, email, first_name, last_name, bio, role, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		u.Username, u.Email, u.FirstName, u.LastName, u.Bio, string(u.Role), u.IsSuperuser,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, translateUniqueViolation(err, "insert user")
	}

	return u, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email))
}

func (r *postgresRepository) List(ctx context.Context, search string, limit, offset int) ([]user.User, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE ($1 = '' OR username ILIKE '%' || $1 || '%')`, search,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1 = '' OR username ILIKE '%' || $1 || '%')
		ORDER BY username
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate users: %w", err)
	}

	return users, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, bio = $4,
		    role = $5, is_superuser = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		u.Email, u.FirstName, u.LastName, u.Bio, string(u.Role), u.IsSuperuser, u.ID,
	).Scan(&u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, translateUniqueViolation(err, "update user")
	}

	return u, nil
}

func (r *postgresRepository) DeleteByUsername(ctx context.Context, username string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) getOne(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	row := r.pool.QueryRow(ctx, query, arg)

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	var role string

	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Bio,
		&role, &u.IsSuperuser, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}

	u.Role = access.Role(role)
	return &u, nil
}

// translateUniqueViolation maps 23505 to the sentinel matching the
// violated constraint.
func translateUniqueViolation(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return user.ErrEmailTaken
		}
		return user.ErrUsernameTaken
	}
	return fmt.Errorf("%s: %w", op, err)
}
