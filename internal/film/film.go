package film

type Studio struct {
	ID   int    `json:"studioId"`
	Name string `json:"studioName"`
}

type Genre struct {
	ID   int    `json:"genreId"`
	Name string `json:"genreName"`
}

// Film maps to the `film` table. ReleaseDate holds the release year as text.
type Film struct {
	ID          int    `json:"filmId"`
	Name        string `json:"filmName"`
	ReleaseDate string `json:"releaseDate"`
	Runtime     int    `json:"runtime"`
	Director    string `json:"director"`
	StudioID    int    `json:"studioId"`
	GenreID     int    `json:"genreId"`
}

// FilmDetail is a film joined with its genre and studio names.
type FilmDetail struct {
	Name     string `json:"name"`
	Director string `json:"director"`
	Genre    string `json:"genre"`
	Studio   string `json:"studioName"`
}
