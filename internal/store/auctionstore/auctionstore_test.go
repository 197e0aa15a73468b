package auctionstore_test

import (
	"testing"
	"time"

	"auctionhub/internal/models"
	"auctionhub/internal/store/auctionstore"
	"auctionhub/internal/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := auctionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := models.Auction{
		Title:       "Vase",
		Description: "blue vase",
		StartingBid: 10,
		CurrentBid:  10,
		EndDate:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Creator:     primitive.NewObjectID(),
	}

	created, err := store.Insert(ctx, a)
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	got, err := store.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, created.Title, got.Title)
	require.Equal(t, created.CurrentBid, got.CurrentBid)
	require.Equal(t, created.Creator, got.Creator)
	require.True(t, created.EndDate.Equal(got.EndDate))
}

func TestFindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := auctionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.FindByID(ctx, primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, auctionstore.ErrNotFound)

	// A malformed id behaves like a missing record.
	_, err = store.FindByID(ctx, "not-a-hex-id")
	require.ErrorIs(t, err, auctionstore.ErrNotFound)
}

func TestFindAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := auctionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	for _, title := range []string{"Vase", "Clock", "Painting"} {
		_, err := store.Insert(ctx, models.Auction{Title: title})
		require.NoError(t, err)
	}

	all, err = store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestUpdate_PartialSet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := auctionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Insert(ctx, models.Auction{
		Title:       "Vase",
		Description: "blue vase",
		StartingBid: 10,
		CurrentBid:  10,
	})
	require.NoError(t, err)

	bid := 15.0
	updated, err := store.Update(ctx, created.ID.Hex(), models.AuctionPatch{CurrentBid: &bid})
	require.NoError(t, err)
	require.Equal(t, 15.0, updated.CurrentBid)
	require.Equal(t, "Vase", updated.Title)
	require.Equal(t, "blue vase", updated.Description)
	require.Equal(t, 10.0, updated.StartingBid)
}

func TestUpdate_EmptyPatchIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := auctionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Insert(ctx, models.Auction{Title: "Vase", CurrentBid: 10})
	require.NoError(t, err)

	got, err := store.Update(ctx, created.ID.Hex(), models.AuctionPatch{})
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, 10.0, got.CurrentBid)
}

func TestUpdate_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := auctionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	title := "x"
	_, err := store.Update(ctx, primitive.NewObjectID().Hex(), models.AuctionPatch{Title: &title})
	require.ErrorIs(t, err, auctionstore.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := auctionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Insert(ctx, models.Auction{Title: "Vase"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID.Hex()))

	_, err = store.FindByID(ctx, created.ID.Hex())
	require.ErrorIs(t, err, auctionstore.ErrNotFound)

	require.ErrorIs(t, store.Delete(ctx, created.ID.Hex()), auctionstore.ErrNotFound)
}
