package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobDescription is a stored job posting a user tailors resumes against.
// Immutable after creation except for UpdatedAt.
type JobDescription struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID string             `bson:"user_id" json:"user_id"`

	Title        string   `bson:"title" json:"title"`
	Company      string   `bson:"company" json:"company"`
	Description  string   `bson:"description" json:"description"`
	Requirements []string `bson:"requirements" json:"requirements"`
	Keywords     []string `bson:"keywords" json:"keywords"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
