package film

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/wichananm65/willson-financial/internal/report"
)

// ShortRuntime is the exclusive upper bound, in minutes, for short films.
const ShortRuntime = 120

var labeled = report.Printer{Layout: report.Labeled, Empty: report.NoRecords}

// Display prints studios, genres, short films and films by director.
func Display(ctx context.Context, w io.Writer, repo Repository) error {
	studios, err := repo.Studios(ctx)
	if err != nil {
		return err
	}
	t := report.Table{Headers: []string{"Studio ID", "Studio Name"}, Rows: [][]string{}}
	for _, s := range studios {
		t.Rows = append(t.Rows, []string{strconv.Itoa(s.ID), s.Name})
	}
	if err := section(w, "Displaying Studios", t); err != nil {
		return err
	}

	genres, err := repo.Genres(ctx)
	if err != nil {
		return err
	}
	t = report.Table{Headers: []string{"Genre ID", "Genre Name"}, Rows: [][]string{}}
	for _, g := range genres {
		t.Rows = append(t.Rows, []string{strconv.Itoa(g.ID), g.Name})
	}
	if err := section(w, "Displaying Genres", t); err != nil {
		return err
	}

	short, err := repo.ShortFilms(ctx, ShortRuntime)
	if err != nil {
		return err
	}
	t = report.Table{Headers: []string{"Movie Title", "Runtime"}, Rows: [][]string{}}
	for _, f := range short {
		t.Rows = append(t.Rows, []string{f.Name, strconv.Itoa(f.Runtime)})
	}
	if err := section(w, "Displaying Short Movies", t); err != nil {
		return err
	}

	byDirector, err := repo.ByDirector(ctx)
	if err != nil {
		return err
	}
	t = report.Table{Headers: []string{"Movie Title", "Director"}, Rows: [][]string{}}
	for _, f := range byDirector {
		t.Rows = append(t.Rows, []string{f.Name, f.Director})
	}
	return section(w, "Displaying Movies by Director", t)
}

// ShowFilms prints every film with its genre and studio under title.
func ShowFilms(ctx context.Context, w io.Writer, repo Repository, title string) error {
	details, err := repo.Details(ctx)
	if err != nil {
		return err
	}
	t := report.Table{Headers: []string{"Film Name", "Director", "Genre", "Studio Name"}, Rows: [][]string{}}
	for _, d := range details {
		t.Rows = append(t.Rows, []string{d.Name, d.Director, d.Genre, d.Studio})
	}
	if _, err := fmt.Fprintf(w, "\n--- %s ---\n", title); err != nil {
		return err
	}
	return labeled.Print(w, t)
}

// DemoFilm is inserted by UpdateAndDelete.
var DemoFilm = Film{
	Name:        "Avengers: Infinity War",
	ReleaseDate: "2018",
	Runtime:     149,
	Director:    "Anthony and Joe Russo",
	StudioID:    1,
	GenreID:     2,
}

// UpdateAndDelete inserts DemoFilm, moves film 2 to genre 1 and deletes
// Gladiator, printing the joined film list after each step.
func UpdateAndDelete(ctx context.Context, w io.Writer, repo Repository) error {
	if err := ShowFilms(ctx, w, repo, "DISPLAYING FILMS"); err != nil {
		return err
	}
	if _, err := repo.Create(ctx, DemoFilm); err != nil {
		return err
	}
	if err := ShowFilms(ctx, w, repo, "DISPLAYING FILMS AFTER INSERT"); err != nil {
		return err
	}
	if err := repo.UpdateGenre(ctx, 2, 1); err != nil {
		return err
	}
	if err := ShowFilms(ctx, w, repo, "DISPLAYING FILMS AFTER UPDATE - Changed Alien to Horror"); err != nil {
		return err
	}
	if _, err := repo.DeleteByName(ctx, "Gladiator"); err != nil {
		return err
	}
	return ShowFilms(ctx, w, repo, "DISPLAYING FILMS AFTER DELETE")
}

func section(w io.Writer, title string, t report.Table) error {
	if _, err := fmt.Fprintf(w, "\n --- %s ---\n", title); err != nil {
		return err
	}
	return labeled.Print(w, t)
}
