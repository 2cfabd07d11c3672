package search

import (
	"testing"

	"library/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendExcludesTheBookAskedFor(t *testing.T) {
	library := emptiedLibrary(t)
	addBook(t, library, "Mathematics", "Mathematics")
	survivor := addBook(t, library, "Linear Algebra", "Mathematics")

	recommender := CreateRecommender(library)

	// the query names one book exactly and matches the subject
	message, suggestions, err := recommender.Recommend("  MATHEMATICS ", nil)
	require.NoError(t, err)

	assert.Contains(t, message, "Mathematics")
	require.Len(t, suggestions, 1)
	assert.Equal(t, survivor, suggestions[0])
}

func TestRecommendSuggestionsCanBeEmptyWithSuccessMessage(t *testing.T) {
	library := emptiedLibrary(t)
	addBook(t, library, "Organic Chemistry", "Chemistry")

	recommender := CreateRecommender(library)

	message, suggestions, err := recommender.Recommend("organic chemistry", nil)
	require.NoError(t, err)

	// the only book in the target subject is the one asked for
	assert.Contains(t, message, "Chemistry")
	assert.Contains(t, message, "check out these related titles")
	assert.Empty(t, suggestions)
}

func TestRecommendNoMatchListsKnownSubjects(t *testing.T) {
	recommender := CreateRecommender(newSeededLibrary(t))

	message, suggestions, err := recommender.Recommend("astrology", nil)
	require.NoError(t, err)

	assert.Empty(t, suggestions)
	assert.Contains(t, message, "couldn't find a direct match for 'astrology'")
	assert.Contains(t, message, "Computer Science, Mathematics, Science")
}

func TestRecommendNoSubjectsAvailable(t *testing.T) {
	recommender := CreateRecommender(emptiedLibrary(t))

	message, suggestions, err := recommender.Recommend("anything", nil)
	require.NoError(t, err)

	assert.Empty(t, suggestions)
	assert.Contains(t, message, "No subjects available.")
}

func TestRecommendTieBreakIsLexicographic(t *testing.T) {
	// "science" is a substring of both "Computer Science" and "Science";
	// the lexicographically first subject wins
	recommender := CreateRecommender(newSeededLibrary(t))

	message, suggestions, err := recommender.Recommend("science", nil)
	require.NoError(t, err)

	assert.Contains(t, message, "Computer Science")
	require.Len(t, suggestions, 2)
	for _, book := range suggestions {
		assert.Equal(t, "Computer Science", book.Subject)
	}
}

func TestRecommendTargetsSubjectOfFirstHitWhenGiven(t *testing.T) {
	// the chat endpoint never passes hits in, but the contract stands for
	// callers that do
	library := newSeededLibrary(t)
	recommender := CreateRecommender(library)

	found := []models.Book{{Id: 42, Name: "Some Hit", Subject: "Mathematics"}}

	message, suggestions, err := recommender.Recommend("irrelevant", found)
	require.NoError(t, err)

	assert.Contains(t, message, "Mathematics")
	require.Len(t, suggestions, 2)
	for _, book := range suggestions {
		assert.Equal(t, "Mathematics", book.Subject)
	}
}
