package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a credential record. Password always holds a bcrypt digest,
// never plaintext.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name     string             `bson:"name" json:"name"`
	Password string             `bson:"password" json:"-"`
}
