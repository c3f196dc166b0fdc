// Package testutil provides the shared sqlite-backed fixtures for unit
// tests. Integration tests that need real Postgres live under
// internal/integration.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tastebook/backend/internal/database"
	"github.com/tastebook/backend/internal/service"
)

// JWTSecret is the signing secret used by all test tokens.
const JWTSecret = "test-secret"

// Password is the password every test account is created with.
const Password = "password123"

// NewDB opens a fresh in-memory sqlite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps all connections of this test on
	// the same data while isolating it from other tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db))
	return db
}

// NewAuthService returns an auth service bound to the test signing secret.
func NewAuthService(db *gorm.DB) *service.AuthService {
	return service.NewAuthService(db, JWTSecret)
}

// CreateUserAndToken registers an account and returns its id and a valid
// session token.
func CreateUserAndToken(t *testing.T, db *gorm.DB, name, email string) (uuid.UUID, string) {
	t.Helper()

	auth := NewAuthService(db)
	token, err := auth.Register(context.Background(), name, email, Password)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)

	return claims.UserID, token
}
