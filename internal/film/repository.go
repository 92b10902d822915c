package film

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("film not found")

type Repository interface {
	Studios(ctx context.Context) ([]Studio, error)
	Genres(ctx context.Context) ([]Genre, error)
	ShortFilms(ctx context.Context, maxRuntime int) ([]Film, error)
	ByDirector(ctx context.Context) ([]Film, error)
	Details(ctx context.Context) ([]FilmDetail, error)
	Create(ctx context.Context, f Film) (Film, error)
	UpdateGenre(ctx context.Context, filmID, genreID int) error
	DeleteByName(ctx context.Context, name string) (int64, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	studios []Studio
	genres  []Genre
	films   []Film
	nextID  int
}

func NewInMemoryRepository(studios []Studio, genres []Genre, films []Film) *InMemoryRepository {
	r := &InMemoryRepository{
		studios: append([]Studio(nil), studios...),
		genres:  append([]Genre(nil), genres...),
		films:   append([]Film(nil), films...),
		nextID:  1,
	}
	for _, f := range films {
		if f.ID >= r.nextID {
			r.nextID = f.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) Studios(ctx context.Context) ([]Studio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Studio{}, r.studios...), nil
}

func (r *InMemoryRepository) Genres(ctx context.Context) ([]Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Genre{}, r.genres...), nil
}

func (r *InMemoryRepository) ShortFilms(ctx context.Context, maxRuntime int) ([]Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Film, 0)
	for _, f := range r.films {
		if f.Runtime < maxRuntime {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ByDirector(ctx context.Context) ([]Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]Film{}, r.films...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Director < out[j].Director })
	return out, nil
}

func (r *InMemoryRepository) Details(ctx context.Context) ([]FilmDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]FilmDetail, 0, len(r.films))
	for _, f := range r.films {
		genre, okGenre := r.genreName(f.GenreID)
		studio, okStudio := r.studioName(f.StudioID)
		if !okGenre || !okStudio {
			continue
		}
		out = append(out, FilmDetail{Name: f.Name, Director: f.Director, Genre: genre, Studio: studio})
	}
	return out, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, f Film) (Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f.ID = r.nextID
	r.nextID++
	r.films = append(r.films, f)
	return f, nil
}

func (r *InMemoryRepository) UpdateGenre(ctx context.Context, filmID, genreID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.films {
		if r.films[i].ID == filmID {
			r.films[i].GenreID = genreID
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.films[:0]
	var removed int64
	for _, f := range r.films {
		if f.Name == name {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	r.films = kept
	return removed, nil
}

func (r *InMemoryRepository) genreName(id int) (string, bool) {
	for _, g := range r.genres {
		if g.ID == id {
			return g.Name, true
		}
	}
	return "", false
}

func (r *InMemoryRepository) studioName(id int) (string, bool) {
	for _, s := range r.studios {
		if s.ID == id {
			return s.Name, true
		}
	}
	return "", false
}
