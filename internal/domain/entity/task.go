package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is stored in the tasks collection. UserID is the owner's id in hex,
// matching the uid claim of the session token; it is not a referential
// constraint. CreatedAt backs the deterministic list order.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	UserID      string             `bson:"userId" json:"userId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
