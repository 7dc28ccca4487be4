package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewdb-backend/internal/domains/comment"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, cm *comment.Comment) (*comment.Comment, error) {
	query := `
		INSERT INTO comments (review_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, pub_date`

	err := r.pool.QueryRow(ctx, query, cm.ReviewID, cm.AuthorID, cm.Text).
		Scan(&cm.ID, &cm.PubDate)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	return cm, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, reviewID, id int64) (*comment.Comment, error) {
	query := `
		SELECT c.id, c.review_id, c.author_id, u.username, c.text, c.pub_date
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.review_id = $1 AND c.id = $2`

	var cm comment.Comment
	err := r.pool.QueryRow(ctx, query, reviewID, id).Scan(
		&cm.ID, &cm.ReviewID, &cm.AuthorID, &cm.Author, &cm.Text, &cm.PubDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, comment.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select comment: %w", err)
	}

	return &cm, nil
}

func (r *postgresRepository) ListByReview(ctx context.Context, reviewID int64, limit, offset int) ([]comment.Comment, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE review_id = $1`, reviewID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	query := `
		SELECT c.id, c.review_id, c.author_id, u.username, c.text, c.pub_date
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.review_id = $1
		ORDER BY c.pub_date DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, reviewID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("select comments: %w", err)
	}
	defer rows.Close()

	var comments []comment.Comment
	for rows.Next() {
		var cm comment.Comment
		if err := rows.Scan(&cm.ID, &cm.ReviewID, &cm.AuthorID, &cm.Author, &cm.Text, &cm.PubDate); err != nil {
			return nil, 0, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, cm *comment.Comment) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE comments SET text = $1 WHERE id = $2 AND review_id = $3`,
		cm.Text, cm.ID, cm.ReviewID,
	)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, reviewID, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM comments WHERE review_id = $1 AND id = $2`, reviewID, id,
	)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrNotFound
	}
	return nil
}
