package models

import (
	"errors"
	"strconv"
	"strings"
)

var ErrBlankField = errors.New("name and subject must not be empty")

type Book struct {
	Id      int64   `json:"book_id"`
	Name    string  `json:"name" binding:"required"`
	Subject string  `json:"subject" binding:"required"`
	Price   float64 `json:"price"`
	Edition int     `json:"edition"`
}

// BookInput is a Book before the store has assigned it an id.
type BookInput struct {
	Name    string
	Subject string
	Price   float64
	Edition int
}

// ParseBookInput coerces raw form values into a BookInput. Price must parse
// as a non-negative number and edition as a positive integer.
func ParseBookInput(name, subject, price, edition string) (*BookInput, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(subject) == "" {
		return nil, ErrBlankField
	}

	priceValue, err := strconv.ParseFloat(price, 64)
	if err != nil || priceValue < 0 {
		return nil, errors.New("price must be a non-negative number")
	}

	editionValue, err := strconv.Atoi(edition)
	if err != nil || editionValue <= 0 {
		return nil, errors.New("edition must be a positive integer")
	}

	return &BookInput{
		Name:    name,
		Subject: subject,
		Price:   priceValue,
		Edition: editionValue,
	}, nil
}
