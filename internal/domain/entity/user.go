package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the sole persisted entity: one account record.
//
// The Password field holds only the derived PBKDF2 hash, never plaintext.
// HashIterations records the derivation parameter used for this record so
// the configured count can be raised later without invalidating old
// credentials; it stays out of the JSON shape.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"userId,omitempty" json:"userId,omitempty"`
	OwnerID        string             `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	Firstname      string             `bson:"firstname" json:"firstname"`
	Lastname       string             `bson:"lastname" json:"lastname"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"password"`
	Salt           string             `bson:"salt" json:"salt"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	PhoneNumber    string             `bson:"phoneNumber" json:"phoneNumber"`
	IsAdmin        bool               `bson:"isAdmin" json:"isAdmin"`
	IsSeller       bool               `bson:"isSeller" json:"isSeller"`
	CreatedDate    time.Time          `bson:"createdDate" json:"createdDate"`
	HashIterations int                `bson:"hashIterations,omitempty" json:"-"`
}
