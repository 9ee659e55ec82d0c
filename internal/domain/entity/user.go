package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is stored in the users collection. Password holds a bcrypt hash and is
// never serialized to clients.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Address   string             `bson:"address" json:"address"`
	PhoneNo   string             `bson:"phoneNo" json:"phoneNo"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
