package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSetDBAndGetDB(t *testing.T) {
	original := GetDB()
	defer SetDB(original)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	SetDB(db)
	assert.Same(t, db, GetDB())
}

func TestGetDBReturnsCurrentInstance(t *testing.T) {
	original := GetDB()
	defer SetDB(original)

	first, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	second, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	SetDB(first)
	assert.Same(t, first, GetDB())

	SetDB(second)
	assert.Same(t, second, GetDB())
	assert.NotSame(t, first, GetDB())
}
