package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/backoffice/user-management-api/internal/core/domain"
)

// SeedConfig controls the initial administrator account created on first run.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

// EnsureSchema creates the unique indexes and seeds the fixed role catalog
// plus the initial administrator account. Idempotent: safe to run on every
// startup.
//
// The unique index on users.email is the hard uniqueness guarantee; two
// concurrent creates with the same email cannot both succeed regardless of
// any application-level pre-check.
func EnsureSchema(ctx context.Context, db *mongo.Database, cfg SeedConfig) error {
	users := db.Collection(usersCollection)
	roles := db.Collection(rolesCollection)

	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}

	_, err = roles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create roles name index: %w", err)
	}

	for _, name := range []string{domain.RoleAdmin, domain.RoleReviewer} {
		_, err := roles.UpdateOne(ctx,
			bson.M{"name": name},
			bson.M{"$setOnInsert": bson.M{"name": name}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}

	return seedAdminUser(ctx, users, roles, cfg)
}

// seedAdminUser creates the bootstrap administrator account when no user owns
// the configured email yet.
func seedAdminUser(ctx context.Context, users, roles *mongo.Collection, cfg SeedConfig) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	n, err := users.CountDocuments(ctx, bson.M{"email": cfg.AdminEmail})
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if n > 0 {
		return nil
	}

	var adminRole mongoRoleDoc
	if err := roles.FindOne(ctx, bson.M{"name": domain.RoleAdmin}).Decode(&adminRole); err != nil {
		return fmt.Errorf("load admin role: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC().Unix()
	_, err = users.InsertOne(ctx, mongoUser{
		ID:           primitive.NewObjectID(),
		Name:         "Administrador",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         mongoRole{ID: adminRole.ID, Name: domain.RoleAdmin},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("seed admin account: %w", err)
	}
	return nil
}
