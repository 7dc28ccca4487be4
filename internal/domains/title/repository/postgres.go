package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewdb-backend/internal/domains/title"
	"reviewdb-backend/pkg/database"
)

// selectColumns is shared by GetByID and List. The rating subquery runs
// per row so it is always current; ratings are never cached or stored.
const selectColumns = `
	t.id, t.name, t.year, t.description,
	c.name, c.slug,
	(SELECT AVG(r.score)::float8 FROM reviews r WHERE r.title_id = t.id) AS rating,
	COALESCE(array_agg(g.name ORDER BY g.slug) FILTER (WHERE g.id IS NOT NULL), '{}'),
	COALESCE(array_agg(g.slug ORDER BY g.slug) FILTER (WHERE g.id IS NOT NULL), '{}')`

const selectJoins = `
	FROM titles t
	LEFT JOIN categories c ON c.id = t.category_id
	LEFT JOIN title_genres tg ON tg.title_id = t.id
	LEFT JOIN genres g ON g.id = tg.genre_id`

const selectGroupBy = ` GROUP BY t.id, t.name, t.year, t.description, c.name, c.slug`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) title.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, t *title.Title, categoryID *int64, genreIDs []int64) (int64, error) {
	var id int64
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO titles (name, year, description, category_id)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			t.Name, t.Year, t.Description, categoryID,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert title: %w", err)
		}

		return insertGenreLinks(ctx, tx, id, genreIDs)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*title.Title, error) {
	query := `SELECT` + selectColumns + selectJoins + ` WHERE t.id = $1` + selectGroupBy

	t, err := scanTitle(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, title.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM titles WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check title exists: %w", err)
	}
	return exists, nil
}

const listWhere = `
	WHERE ($1 = '' OR c.slug = $1)
	  AND ($2 = '' OR EXISTS (
	      SELECT 1 FROM title_genres tg2
	      JOIN genres g2 ON g2.id = tg2.genre_id
	      WHERE tg2.title_id = t.id AND g2.slug = $2))
	  AND ($3 = '' OR t.name ILIKE '%' || $3 || '%')
	  AND ($4 = 0 OR t.year = $4)`

func (r *postgresRepository) List(ctx context.Context, filter title.ListFilter, limit, offset int) ([]title.Title, int64, error) {
	countQuery := `SELECT COUNT(*) FROM titles t LEFT JOIN categories c ON c.id = t.category_id` + listWhere

	var total int64
	err := r.pool.QueryRow(ctx, countQuery,
		filter.CategorySlug, filter.GenreSlug, filter.Name, filter.Year,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count titles: %w", err)
	}

	// newest works first
	query := `SELECT` + selectColumns + selectJoins + listWhere + selectGroupBy +
		` ORDER BY t.year DESC, t.name LIMIT $5 OFFSET $6`

	rows, err := r.pool.Query(ctx, query,
		filter.CategorySlug, filter.GenreSlug, filter.Name, filter.Year, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("select titles: %w", err)
	}
	defer rows.Close()

	var titles []title.Title
	for rows.Next() {
		t, err := scanTitle(rows)
		if err != nil {
			return nil, 0, err
		}
		titles = append(titles, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate titles: %w", err)
	}

	return titles, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, data title.UpdateData) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE titles SET name = $1, year = $2, description = $3, category_id = $4 WHERE id = $5`,
			data.Name, data.Year, data.Description, data.CategoryID, id,
		)
		if err != nil {
			return fmt.Errorf("update title: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return title.ErrNotFound
		}

		if data.ReplaceGenres {
			if _, err := tx.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, id); err != nil {
				return fmt.Errorf("clear title genres: %w", err)
			}
			if err := insertGenreLinks(ctx, tx, id, data.GenreIDs); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM titles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete title: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return title.ErrNotFound
	}
	return nil
}

func insertGenreLinks(ctx context.Context, tx pgx.Tx, titleID int64, genreIDs []int64) error {
	for _, gid := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			titleID, gid,
		)
		if err != nil {
			return fmt.Errorf("insert title genre: %w", err)
		}
	}
	return nil
}

func scanTitle(row pgx.Row) (*title.Title, error) {
	var t title.Title
	var catName, catSlug *string
	var genreNames, genreSlugs []string

	err := row.Scan(
		&t.ID, &t.Name, &t.Year, &t.Description,
		&catName, &catSlug,
		&t.Rating,
		&genreNames, &genreSlugs,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan title: %w", err)
	}

	if catSlug != nil {
		t.Category = &title.CategoryInfo{Name: *catName, Slug: *catSlug}
	}

	t.Genres = make([]title.GenreInfo, 0, len(genreNames))
	for i := range genreNames {
		t.Genres = append(t.Genres, title.GenreInfo{Name: genreNames[i], Slug: genreSlugs[i]})
	}

	return &t, nil
}
