package film

import (
	"context"
	"database/sql"
)

type dbtx interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type warningChecker interface {
	CheckWarnings() error
}

// PostgresRepository reads the movies database. When db tracks server
// warnings they are checked after every statement.
type PostgresRepository struct {
	db dbtx
}

const (
	listStudiosQuery = `SELECT studio_id, studio_name FROM studio ORDER BY studio_id`
	listGenresQuery  = `SELECT genre_id, genre_name FROM genre ORDER BY genre_id`

	filmColumns = `film_id, film_name, film_releaseDate, film_runtime, film_director, studio_id, genre_id`

	shortFilmsQuery = `SELECT ` + filmColumns + ` FROM film WHERE film_runtime < $1 ORDER BY film_id`
	byDirectorQuery = `SELECT ` + filmColumns + ` FROM film ORDER BY film_director, film_id`

	filmDetailsQuery = `
		SELECT f.film_name, f.film_director, g.genre_name, s.studio_name
		FROM film f
		INNER JOIN genre g ON f.genre_id = g.genre_id
		INNER JOIN studio s ON f.studio_id = s.studio_id
		ORDER BY f.film_id
	`
	insertFilmQuery = `
		INSERT INTO film (film_name, film_releaseDate, film_runtime, film_director, studio_id, genre_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING film_id
	`
	updateFilmGenreQuery  = `UPDATE film SET genre_id = $1 WHERE film_id = $2`
	deleteFilmByNameQuery = `DELETE FROM film WHERE film_name = $1`
)

func NewPostgresRepository(db dbtx) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Studios(ctx context.Context) ([]Studio, error) {
	rows, err := r.db.QueryContext(ctx, listStudiosQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Studio, 0)
	for rows.Next() {
		var s Studio
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, r.finish(rows)
}

func (r *PostgresRepository) Genres(ctx context.Context) ([]Genre, error) {
	rows, err := r.db.QueryContext(ctx, listGenresQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Genre, 0)
	for rows.Next() {
		var g Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, r.finish(rows)
}

func (r *PostgresRepository) ShortFilms(ctx context.Context, maxRuntime int) ([]Film, error) {
	return r.films(ctx, shortFilmsQuery, maxRuntime)
}

func (r *PostgresRepository) ByDirector(ctx context.Context) ([]Film, error) {
	return r.films(ctx, byDirectorQuery)
}

func (r *PostgresRepository) Details(ctx context.Context) ([]FilmDetail, error) {
	rows, err := r.db.QueryContext(ctx, filmDetailsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FilmDetail, 0)
	for rows.Next() {
		var d FilmDetail
		if err := rows.Scan(&d.Name, &d.Director, &d.Genre, &d.Studio); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, r.finish(rows)
}

func (r *PostgresRepository) Create(ctx context.Context, f Film) (Film, error) {
	err := r.db.QueryRowContext(ctx, insertFilmQuery,
		f.Name, f.ReleaseDate, f.Runtime, f.Director, f.StudioID, f.GenreID,
	).Scan(&f.ID)
	if err != nil {
		return Film{}, err
	}
	return f, r.checkWarnings()
}

func (r *PostgresRepository) UpdateGenre(ctx context.Context, filmID, genreID int) error {
	res, err := r.db.ExecContext(ctx, updateFilmGenreQuery, genreID, filmID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return r.checkWarnings()
}

func (r *PostgresRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteFilmByNameQuery, name)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, r.checkWarnings()
}

func (r *PostgresRepository) films(ctx context.Context, q string, args ...any) ([]Film, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Film, 0)
	for rows.Next() {
		var f Film
		if err := rows.Scan(&f.ID, &f.Name, &f.ReleaseDate, &f.Runtime, &f.Director, &f.StudioID, &f.GenreID); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, r.finish(rows)
}

func (r *PostgresRepository) finish(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		return err
	}
	return r.checkWarnings()
}

func (r *PostgresRepository) checkWarnings() error {
	if wc, ok := r.db.(warningChecker); ok {
		return wc.CheckWarnings()
	}
	return nil
}
