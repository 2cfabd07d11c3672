package search

import (
	"path/filepath"
	"testing"

	"library/db"
	"library/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededLibrary(t *testing.T) *db.SQLiteLibrary {
	t.Helper()

	library, err := db.CreateSQLiteLibrary(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { library.Close() })

	return library
}

func TestSearchMatchesNameAndSubject(t *testing.T) {
	engine := CreateEngine(newSeededLibrary(t))

	byName, err := engine.Search("linear algebra")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Linear Algebra and Its Applications", byName[0].Name)

	bySubject, err := engine.Search("computer")
	require.NoError(t, err)
	assert.Len(t, bySubject, 2)
}

func TestSearchIgnoresCaseAndWhitespace(t *testing.T) {
	engine := CreateEngine(newSeededLibrary(t))

	shouted, err := engine.Search("  MATHEMATICS  ")
	require.NoError(t, err)
	plain, err := engine.Search("mathematics")
	require.NoError(t, err)

	assert.Equal(t, plain, shouted)
	assert.Len(t, plain, 2)
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	engine := CreateEngine(newSeededLibrary(t))

	books, err := engine.Search("")
	require.NoError(t, err)
	assert.Len(t, books, 5)
}

func TestSearchNoMatchesIsEmptySlice(t *testing.T) {
	engine := CreateEngine(newSeededLibrary(t))

	books, err := engine.Search("quantum basket weaving")
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestSearchIsDeterministic(t *testing.T) {
	engine := CreateEngine(newSeededLibrary(t))

	first, err := engine.Search("science")
	require.NoError(t, err)
	second, err := engine.Search("science")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func emptiedLibrary(t *testing.T) *db.SQLiteLibrary {
	t.Helper()

	library := newSeededLibrary(t)
	books, err := library.ListAll()
	require.NoError(t, err)
	for _, book := range books {
		_, err := library.Remove(book.Id)
		require.NoError(t, err)
	}

	return library
}

func addBook(t *testing.T, library *db.SQLiteLibrary, name, subject string) models.Book {
	t.Helper()

	id, err := library.Add(&models.BookInput{Name: name, Subject: subject, Price: 100, Edition: 1})
	require.NoError(t, err)

	return models.Book{Id: id, Name: name, Subject: subject, Price: 100, Edition: 1}
}
