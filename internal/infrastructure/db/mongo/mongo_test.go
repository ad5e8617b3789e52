package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

func TestTokenStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "farmdesk." + collectionSessionTokens

	mt.Run("load existing slot", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "access_token"},
			{Key: "token", Value: "abc"},
		}))

		tok, err := NewTokenStore(mt.DB).Load(context.Background(), "access_token")
		if err != nil || tok != "abc" {
			mt.Fatalf("unexpected token %q err %v", tok, err)
		}
	})

	mt.Run("load empty slot", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		tok, err := NewTokenStore(mt.DB).Load(context.Background(), "access_token")
		if err != nil || tok != "" {
			mt.Fatalf("missing slot should load as empty, got %q %v", tok, err)
		}
	})

	mt.Run("save upserts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		if err := NewTokenStore(mt.DB).Save(context.Background(), "access_token", "abc"); err != nil {
			mt.Fatalf("save: %v", err)
		}
		if evt := mt.GetStartedEvent(); evt == nil || evt.CommandName != "update" {
			mt.Fatalf("expected an update command, got %+v", evt)
		}
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		if err := NewTokenStore(mt.DB).Delete(context.Background(), "access_token"); err != nil {
			mt.Fatalf("delete: %v", err)
		}
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		if _, err := NewTokenStore(mt.DB).Load(context.Background(), "access_token"); err == nil {
			mt.Fatalf("expected error")
		}
	})
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "farmdesk." + collectionUsers

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u, err := NewUserRepository(mt.DB).Create(context.Background(), &domain.User{
			Username:     "farmer",
			PasswordHash: "hash",
			Role:         domain.RoleAdmin,
			CreatedAt:    time.Unix(1700000000, 0),
		})
		if err != nil {
			mt.Fatalf("create: %v", err)
		}
		if u.ID == "" || u.Username != "farmer" {
			mt.Fatalf("unexpected user %+v", u)
		}
	})

	mt.Run("duplicate username", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := NewUserRepository(mt.DB).Create(context.Background(), &domain.User{Username: "farmer"})
		if !errors.Is(err, domain.ErrUserExists) {
			mt.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	mt.Run("find by username", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "farmer"},
			{Key: "password_hash", Value: "hash"},
			{Key: "role", Value: domain.RoleViewer},
			{Key: "created_at", Value: int64(1700000000)},
		}))

		u, err := NewUserRepository(mt.DB).FindByUsername(context.Background(), "farmer")
		if err != nil {
			mt.Fatalf("find: %v", err)
		}
		if u.ID != id.Hex() || u.Role != domain.RoleViewer || u.CreatedAt.Unix() != 1700000000 {
			mt.Fatalf("unexpected user %+v", u)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewUserRepository(mt.DB).FindByUsername(context.Background(), "ghost")
		if !errors.Is(err, domain.ErrUserNotFound) {
			mt.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
