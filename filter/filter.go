package filter

import (
	"github.com/s0up4200/favarr/tmdb"
)

// defaultCacheSize bounds the compiled expressions kept by the package compiler
const defaultCacheSize = 64

var defaultCompiler = NewExprCompiler(WithCache(defaultCacheSize))

// ParseAndCreateFilter compiles an expression with the shared caching compiler.
//
// Available fields: ID, Title, Overview, PosterPath, HasPoster, ReleaseDate,
// Released, Year, VoteAverage and Movie (the whole tmdb.Movie).
func ParseAndCreateFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// Apply returns the movies matching f, preserving their order.
// A nil filter matches everything.
func Apply(f Filter, movies []tmdb.Movie) []tmdb.Movie {
	if f == nil {
		return movies
	}

	matched := make([]tmdb.Movie, 0, len(movies))
	for _, movie := range movies {
		if f.Evaluate(movie) {
			matched = append(matched, movie)
		}
	}
	return matched
}
