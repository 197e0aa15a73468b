package auctioncache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"auctionhub/internal/models"

	redismock "github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGet(t *testing.T) {
	rdc, mock := redismock.NewClientMock()
	cache := New(rdc, time.Minute)

	a := models.Auction{ID: primitive.NewObjectID(), Title: "Vase", CurrentBid: 10}
	raw, err := json.Marshal(a)
	require.NoError(t, err)

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGet("auction:" + a.ID.Hex()).SetVal(string(raw))

		got, err := cache.Get(context.Background(), a.ID.Hex())
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
		require.Equal(t, "Vase", got.Title)
	})

	t.Run("miss", func(t *testing.T) {
		mock.ExpectGet("auction:absent").RedisNil()

		_, err := cache.Get(context.Background(), "absent")
		require.ErrorIs(t, err, ErrMiss)
	})

	t.Run("corrupt_payload_is_a_miss", func(t *testing.T) {
		mock.ExpectGet("auction:bad").SetVal("{not json")

		_, err := cache.Get(context.Background(), "bad")
		require.ErrorIs(t, err, ErrMiss)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetThenInvalidate(t *testing.T) {
	rdc, mock := redismock.NewClientMock()
	cache := New(rdc, time.Minute)

	a := models.Auction{ID: primitive.NewObjectID(), Title: "Vase", CurrentBid: 10}
	raw, err := json.Marshal(a)
	require.NoError(t, err)

	mock.ExpectSet("auction:"+a.ID.Hex(), raw, time.Minute).SetVal("OK")
	cache.Set(context.Background(), a)

	mock.ExpectDel("auction:" + a.ID.Hex()).SetVal(1)
	cache.Invalidate(context.Background(), a.ID.Hex())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisFailuresNeverPropagate(t *testing.T) {
	// No expectations registered: every command errors. Set and Invalidate
	// must swallow that, and Get must degrade to a miss.
	rdc, _ := redismock.NewClientMock()
	cache := New(rdc, time.Minute)

	a := models.Auction{ID: primitive.NewObjectID()}
	cache.Set(context.Background(), a)
	cache.Invalidate(context.Background(), a.ID.Hex())

	_, err := cache.Get(context.Background(), a.ID.Hex())
	require.ErrorIs(t, err, ErrMiss)
}
