// Package detail keeps the favorite flag and poster of one movie in sync
// with TMDB and reduces every outcome into a single PresentationState.
package detail
