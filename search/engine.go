// Package search implements the keyword search over the catalog and the
// subject-based fallback recommendation used by the student chat.
package search

import (
	"library/db"
	"library/models"
)

// Engine matches a free-text query against book names and subjects.
type Engine struct {
	Library db.LibraryDatabaseManager
}

func CreateEngine(library db.LibraryDatabaseManager) *Engine {
	return &Engine{Library: library}
}

// Search returns every book whose name or subject contains the query,
// case-insensitively, ignoring surrounding whitespace. An empty query
// matches every book, since every string contains the empty substring;
// filtering empty queries is the caller's job. No matches is a normal
// outcome reported as an empty slice.
func (engine *Engine) Search(query string) ([]models.Book, error) {
	return engine.Library.FindMatching(query)
}
