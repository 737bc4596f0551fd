package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestUser_PasswordFieldNotPersisted(t *testing.T) {
	s, err := schema.Parse(&User{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	// Password is only staging for HashPassword: it must appear in no
	// INSERT and no migration, or a fresh schema breaks on signup.
	_, hasPassword := s.FieldsByDBName["password"]
	assert.False(t, hasPassword, "password must not map to a column")

	hash, hasHash := s.FieldsByDBName["password_hash"]
	require.True(t, hasHash)
	assert.True(t, hash.Creatable)
}

func TestUser_HashPassword(t *testing.T) {
	u := &User{Password: "s3cret-pass"}
	require.NoError(t, u.HashPassword())
	require.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)

	assert.NoError(t, u.CheckPassword("s3cret-pass"))
	assert.Error(t, u.CheckPassword("wrong"))
}

func TestUser_HashPasswordEmptyIsNoop(t *testing.T) {
	u := &User{}
	require.NoError(t, u.HashPassword())
	assert.Empty(t, u.PasswordHash)
}
