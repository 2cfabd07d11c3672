package db

import "library/models"

type LibraryDatabaseManager interface {
	Add(input *models.BookInput) (int64, error)
	Remove(id int64) (bool, error)
	ListAll() ([]models.Book, error)
	FindMatching(query string) ([]models.Book, error)
	BySubject(subject string) ([]models.Book, error)
}
