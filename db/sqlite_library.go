package db

import (
	"database/sql"
	"fmt"
	"strings"

	"library/models"

	_ "modernc.org/sqlite"
)

// BUSY_TIMEOUT_MS bounds how long an operation waits on a lock held by a
// concurrent writer before failing.
const BUSY_TIMEOUT_MS = 10000

const CREATE_BOOKS_TABLE = `
	CREATE TABLE IF NOT EXISTS books (
		book_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		subject TEXT NOT NULL,
		price REAL NOT NULL,
		edition INTEGER NOT NULL
	)
`

var seedBooks = []models.BookInput{
	{Name: "The C++ Programming Language", Subject: "Computer Science", Price: 750.00, Edition: 4},
	{Name: "Calculus: Early Transcendentals", Subject: "Mathematics", Price: 980.50, Edition: 8},
	{Name: "Introduction to Data Science", Subject: "Computer Science", Price: 620.00, Edition: 2},
	{Name: "Linear Algebra and Its Applications", Subject: "Mathematics", Price: 850.00, Edition: 5},
	{Name: "Organic Chemistry", Subject: "Science", Price: 1100.00, Edition: 10},
}

// SQLiteLibrary is the file-backed catalog store. database/sql hands each
// operation its own connection from the pool, so no handle survives across
// calls and every statement commits on its own.
type SQLiteLibrary struct {
	db *sql.DB
}

// CreateSQLiteLibrary opens (or creates) the database at path, ensures the
// schema exists and seeds the sample rows when the table is empty.
func CreateSQLiteLibrary(path string) (*SQLiteLibrary, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", path, BUSY_TIMEOUT_MS)

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, storageError("open", err)
	}

	library := &SQLiteLibrary{db: sqlDB}

	if err := library.initialize(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return library, nil
}

func (library *SQLiteLibrary) initialize() error {
	if _, err := library.db.Exec(CREATE_BOOKS_TABLE); err != nil {
		return storageError("create schema", err)
	}

	var count int
	if err := library.db.QueryRow("SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		return storageError("count books", err)
	}

	if count > 0 {
		return nil
	}

	tx, err := library.db.Begin()
	if err != nil {
		return storageError("seed books", err)
	}

	for _, book := range seedBooks {
		_, err := tx.Exec(
			"INSERT INTO books (name, subject, price, edition) VALUES (?, ?, ?, ?)",
			book.Name, book.Subject, book.Price, book.Edition,
		)
		if err != nil {
			tx.Rollback()
			return storageError("seed books", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError("seed books", err)
	}

	return nil
}

func (library *SQLiteLibrary) Close() error {
	return library.db.Close()
}

func (library *SQLiteLibrary) Add(input *models.BookInput) (int64, error) {
	if strings.TrimSpace(input.Name) == "" {
		return 0, validationError("name must not be empty")
	}
	if strings.TrimSpace(input.Subject) == "" {
		return 0, validationError("subject must not be empty")
	}
	if input.Price < 0 {
		return 0, validationError("price must be a non-negative number")
	}
	if input.Edition <= 0 {
		return 0, validationError("edition must be a positive integer")
	}

	result, err := library.db.Exec(
		"INSERT INTO books (name, subject, price, edition) VALUES (?, ?, ?, ?)",
		input.Name, input.Subject, input.Price, input.Edition,
	)
	if err != nil {
		return 0, storageError("insert book", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageError("insert book", err)
	}

	return id, nil
}

// Remove deletes the book with the given id. A missing id is a normal
// outcome reported as false, not an error.
func (library *SQLiteLibrary) Remove(id int64) (bool, error) {
	result, err := library.db.Exec("DELETE FROM books WHERE book_id = ?", id)
	if err != nil {
		return false, storageError("delete book", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, storageError("delete book", err)
	}

	return removed > 0, nil
}

// ListAll returns every book, most recently added first.
func (library *SQLiteLibrary) ListAll() ([]models.Book, error) {
	rows, err := library.db.Query("SELECT book_id, name, subject, price, edition FROM books ORDER BY book_id DESC")
	if err != nil {
		return nil, storageError("list books", err)
	}

	return scanBooks(rows)
}

// FindMatching returns books whose name or subject contains the trimmed,
// lower-cased query. LIKE wildcards in the query are escaped so the match
// is a plain substring match. An empty query matches every row.
func (library *SQLiteLibrary) FindMatching(query string) ([]models.Book, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(query))) + "%"

	rows, err := library.db.Query(
		`SELECT book_id, name, subject, price, edition FROM books
		 WHERE LOWER(name) LIKE ? ESCAPE '\' OR LOWER(subject) LIKE ? ESCAPE '\'
		 ORDER BY book_id DESC`,
		pattern, pattern,
	)
	if err != nil {
		return nil, storageError("search books", err)
	}

	return scanBooks(rows)
}

// BySubject returns books whose subject equals the given one exactly.
func (library *SQLiteLibrary) BySubject(subject string) ([]models.Book, error) {
	rows, err := library.db.Query(
		"SELECT book_id, name, subject, price, edition FROM books WHERE subject = ? ORDER BY book_id DESC",
		subject,
	)
	if err != nil {
		return nil, storageError("books by subject", err)
	}

	return scanBooks(rows)
}

func scanBooks(rows *sql.Rows) ([]models.Book, error) {
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.Id, &book.Name, &book.Subject, &book.Price, &book.Edition); err != nil {
			return nil, storageError("scan book", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("read books", err)
	}

	return books, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(query string) string {
	return likeEscaper.Replace(query)
}
