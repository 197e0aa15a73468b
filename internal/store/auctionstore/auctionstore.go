package auctionstore

import (
	"context"
	"errors"

	"auctionhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("auction not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("auctions")}
}

// Insert writes a new auction and returns it with its assigned id.
func (s *Store) Insert(ctx context.Context, a models.Auction) (models.Auction, error) {
	a.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Auction{}, err
	}
	return a, nil
}

// FindAll returns every stored auction. No filtering or pagination.
func (s *Store) FindAll(ctx context.Context) ([]models.Auction, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Auction{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID resolves id as an ObjectID hex string. A malformed id behaves
// like a missing record.
func (s *Store) FindByID(ctx context.Context, id string) (models.Auction, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Auction{}, ErrNotFound
	}
	var a models.Auction
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Auction{}, ErrNotFound
		}
		return models.Auction{}, err
	}
	return a, nil
}

// Update applies the non-nil patch fields in a single $set write and returns
// the updated document.
func (s *Store) Update(ctx context.Context, id string, patch models.AuctionPatch) (models.Auction, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Auction{}, ErrNotFound
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.CurrentBid != nil {
		set["currentBid"] = *patch.CurrentBid
	}
	if patch.EndDate != nil {
		set["endDate"] = *patch.EndDate
	}
	if patch.Creator != nil {
		set["creator"] = *patch.Creator
	}
	if patch.ImageURL != nil {
		set["imageUrl"] = *patch.ImageURL
	}

	if len(set) > 0 {
		res, err := s.c.UpdateByID(ctx, oid, bson.M{"$set": set})
		if err != nil {
			return models.Auction{}, err
		}
		if res.MatchedCount == 0 {
			return models.Auction{}, ErrNotFound
		}
	}
	return s.FindByID(ctx, id)
}

// Delete permanently removes the auction. No soft delete.
func (s *Store) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
