package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Profile holds contact details for a username. Username is unique at the
// store level; a matching User record is not required to exist.
type Profile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username    string             `bson:"username" json:"username"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Photo       string             `bson:"photo" json:"photo"`
}
