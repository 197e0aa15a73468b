package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Auction is a document in the "auctions" collection. CurrentBid is seeded
// from StartingBid on creation and overwritten by update/bid operations.
type Auction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"      json:"id"`
	Title       string             `bson:"title"              json:"title"`
	Description string             `bson:"description"        json:"description"`
	StartingBid float64            `bson:"startingBid"        json:"startingBid"`
	CurrentBid  float64            `bson:"currentBid"         json:"currentBid"`
	EndDate     time.Time          `bson:"endDate"            json:"endDate" example:"2025-07-27T16:05:05Z"`
	Creator     primitive.ObjectID `bson:"creator,omitempty"  json:"creator"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`

	// CreatorUser is filled in by the list enrichment, never persisted.
	CreatorUser *User `bson:"-" json:"creatorUser,omitempty"`
}

// AuctionPatch carries the subset of mutable auction fields for a partial
// update. Nil pointers mean "leave unchanged".
type AuctionPatch struct {
	Title       *string
	Description *string
	CurrentBid  *float64
	EndDate     *time.Time
	Creator     *primitive.ObjectID
	ImageURL    *string
}

// User is a document in the "users" collection. PasswordHash is never
// serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name"          json:"name"`
	Email        string             `bson:"email"         json:"email"`
	PasswordHash string             `bson:"password"      json:"-"`
	Role         string             `bson:"role"          json:"role"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
