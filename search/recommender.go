package search

import (
	"fmt"
	"sort"
	"strings"

	"library/db"
	"library/models"
)

// Recommender suggests books from a related subject when a direct search
// came back empty.
type Recommender struct {
	Library db.LibraryDatabaseManager
}

func CreateRecommender(library db.LibraryDatabaseManager) *Recommender {
	return &Recommender{Library: library}
}

// Recommend picks a target subject and returns the books filed under it,
// along with a message for the user.
//
// If found is non-empty the target subject is taken from the first hit.
// The chat endpoint only calls Recommend after an empty search, so that
// branch never triggers there; it is kept for callers that want
// suggestions alongside hits.
//
// Otherwise the target is the lexicographically first subject whose
// lower-cased text contains the trimmed, lower-cased query. When no
// subject matches, the message lists every known subject and the
// suggestion list is empty; that is an informational outcome, not an
// error. Books whose name equals the query (case-insensitively) are
// filtered out of the suggestions so a near-miss never recommends the
// very book that was asked for.
func (recommender *Recommender) Recommend(query string, found []models.Book) (string, []models.Book, error) {
	query = strings.ToLower(strings.TrimSpace(query))

	var targetSubject string

	if len(found) > 0 {
		targetSubject = found[0].Subject
	} else {
		subjects, err := recommender.knownSubjects()
		if err != nil {
			return "", nil, err
		}

		for _, subject := range subjects {
			if strings.Contains(strings.ToLower(subject), query) {
				targetSubject = subject
				break
			}
		}

		if targetSubject == "" {
			subjectList := "No subjects available."
			if len(subjects) > 0 {
				subjectList = strings.Join(subjects, ", ")
			}
			message := fmt.Sprintf("I couldn't find a direct match for '%s'. Try searching one of these subjects: %s", query, subjectList)
			return message, []models.Book{}, nil
		}
	}

	books, err := recommender.Library.BySubject(targetSubject)
	if err != nil {
		return "", nil, err
	}

	suggestions := make([]models.Book, 0, len(books))
	for _, book := range books {
		if strings.ToLower(book.Name) == query {
			continue
		}
		suggestions = append(suggestions, book)
	}

	message := fmt.Sprintf("I didn't find that specific book, but since you are interested in %s, check out these related titles:", targetSubject)
	return message, suggestions, nil
}

// knownSubjects returns the distinct subjects across all books, sorted
// lexicographically so subject selection and the no-match listing are
// deterministic.
func (recommender *Recommender) knownSubjects() ([]string, error) {
	books, err := recommender.Library.ListAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	subjects := make([]string, 0)
	for _, book := range books {
		if !seen[book.Subject] {
			seen[book.Subject] = true
			subjects = append(subjects, book.Subject)
		}
	}

	sort.Strings(subjects)
	return subjects, nil
}
