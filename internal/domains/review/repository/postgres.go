package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewdb-backend/internal/domains/review"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) review.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, rv *review.Review) (*review.Review, error) {
	query := `
		INSERT INTO reviews (title_id, author_id, text, score)
		VALUES ($1, $2, $3, $4)
		RETURNING id, pub_date`

	err := r.pool.QueryRow(ctx, query, rv.TitleID, rv.AuthorID, rv.Text, rv.Score).
		Scan(&rv.ID, &rv.PubDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, review.ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}

	return rv, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, titleID, id int64) (*review.Review, error) {
	query := `
		SELECT r.id, r.title_id, r.author_id, u.username, r.text, r.score, r.pub_date
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.title_id = $1 AND r.id = $2`

	var rv review.Review
	err := r.pool.QueryRow(ctx, query, titleID, id).Scan(
		&rv.ID, &rv.TitleID, &rv.AuthorID, &rv.Author, &rv.Text, &rv.Score, &rv.PubDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, review.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select review: %w", err)
	}

	return &rv, nil
}

func (r *postgresRepository) ListByTitle(ctx context.Context, titleID int64, limit, offset int) ([]review.Review, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE title_id = $1`, titleID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	query := `
		SELECT r.id, r.title_id, r.author_id, u.username, r.text, r.score, r.pub_date
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.title_id = $1
		ORDER BY r.pub_date DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, titleID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("select reviews: %w", err)
	}
	defer rows.Close()

	var reviews []review.Review
	for rows.Next() {
		var rv review.Review
		if err := rows.Scan(&rv.ID, &rv.TitleID, &rv.AuthorID, &rv.Author, &rv.Text, &rv.Score, &rv.PubDate); err != nil {
			return nil, 0, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, total, nil
}

func (r *postgresRepository) ScoresByTitle(ctx context.Context, titleID int64) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT score FROM reviews WHERE title_id = $1`, titleID)
	if err != nil {
		return nil, fmt.Errorf("select scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}

	return scores, nil
}

func (r *postgresRepository) ExistsByTitleAndAuthor(ctx context.Context, titleID, authorID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE title_id = $1 AND author_id = $2)`,
		titleID, authorID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check review exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, rv *review.Review) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reviews SET text = $1, score = $2 WHERE id = $3 AND title_id = $4`,
		rv.Text, rv.Score, rv.ID, rv.TitleID,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, titleID, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM reviews WHERE title_id = $1 AND id = $2`, titleID, id,
	)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrNotFound
	}
	return nil
}
