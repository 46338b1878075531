package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrEmptyTitle       = errors.New("book title cannot be empty")
	ErrEmptyDescription = errors.New("book description cannot be empty")
)

// Genre classifies a book.
type Genre struct {
	Name        string `json:"Name"        bson:"Name"`
	Description string `json:"Description" bson:"Description"`
}

// Author describes who wrote a book.
type Author struct {
	Name string `json:"Name" bson:"Name"`
	Bio  string `json:"Bio"  bson:"Bio"`
}

// Book is a catalog entry. Books are read-only over the API and are
// referenced, never owned, by users' favourite lists.
type Book struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"Title"         bson:"Title"`
	Description string             `json:"Description"   bson:"Description"`
	Genre       Genre              `json:"Genre"         bson:"Genre"`
	Author      Author             `json:"Author"        bson:"Author"`
	Actors      []string           `json:"Actors"        bson:"Actors"`
	ImagePath   string             `json:"ImagePath"     bson:"ImagePath"`
	Featured    bool               `json:"Featured"      bson:"Featured"`
}

// Validate checks the required book fields.
func (b *Book) Validate() error {
	if b.Title == "" {
		return ErrEmptyTitle
	}
	if b.Description == "" {
		return ErrEmptyDescription
	}
	return nil
}
