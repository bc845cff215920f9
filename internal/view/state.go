package view

import (
	"slices"

	"github.com/five82/vidly/internal/catalog"
)

// State owns the controls and the working copy of the movie collection for
// one browsing session. It is not safe for concurrent use; the session that
// created it is its only user.
type State struct {
	controls Controls
	movies   []catalog.Movie
	genres   []catalog.Genre
}

// NewState copies movies into a working collection and prepends the "All
// Genres" entry to genres.
func NewState(movies []catalog.Movie, genres []catalog.Genre, pageSize int) *State {
	return &State{
		controls: DefaultControls(pageSize),
		movies:   slices.Clone(movies),
		genres:   catalog.WithAllGenres(genres),
	}
}

// Controls returns the current controls snapshot.
func (s *State) Controls() Controls {
	return s.controls.Snapshot()
}

// Genres returns the facet list, "All Genres" first.
func (s *State) Genres() []catalog.Genre {
	return slices.Clone(s.genres)
}

// Movies returns a copy of the working collection.
func (s *State) Movies() []catalog.Movie {
	return slices.Clone(s.movies)
}

// IsEmpty reports whether the working collection has no movies at all, as
// opposed to no movies matching the current filter.
func (s *State) IsEmpty() bool {
	return len(s.movies) == 0
}

// View runs the pipeline over the working collection.
func (s *State) View() Page {
	return Apply(s.movies, s.controls)
}

// PageCount is the number of pages the current filter produces.
func (s *State) PageCount() int {
	return PageCount(len(Filter(s.movies, s.controls)), s.controls.PageSize)
}

// SelectGenre filters by genre and clears any search.
func (s *State) SelectGenre(genre catalog.Genre) Controls {
	s.controls = s.controls.WithGenre(genre)
	return s.Controls()
}

// Search filters by title prefix and clears any genre.
func (s *State) Search(query string) Controls {
	s.controls = s.controls.WithSearch(query)
	return s.Controls()
}

// SortBy sorts by path, flipping the order when path is already active.
func (s *State) SortBy(path SortPath) Controls {
	s.controls = s.controls.WithSort(path)
	return s.Controls()
}

// ChangePage moves to page without clamping.
func (s *State) ChangePage(page int) Controls {
	s.controls = s.controls.WithPage(page)
	return s.Controls()
}

// ToggleLike flips the liked flag of the movie with id. It reports whether
// the movie was found; an unknown id changes nothing.
func (s *State) ToggleLike(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.movies[i].Liked = !s.movies[i].Liked
	return true
}

// DeleteMovie removes the movie with id from the working collection. It
// reports whether the movie was found. The current page is left alone even
// when it no longer has any rows.
func (s *State) DeleteMovie(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.movies = slices.Delete(s.movies, i, i+1)
	return true
}

func (s *State) indexOf(id string) int {
	return slices.IndexFunc(s.movies, func(m catalog.Movie) bool { return m.ID == id })
}
