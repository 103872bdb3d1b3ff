package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedOutline is an outline document fetched once and kept in MongoDB.
type SavedOutline struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UUID        string             `bson:"uuid" json:"uuid"`
	Path        string             `bson:"path" json:"path"`
	OutlinePath string             `bson:"outline_path" json:"outline_path"`
	Name        string             `bson:"name" json:"name"`
	Title       string             `bson:"title" json:"title"`
	Document    string             `bson:"document" json:"document"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
