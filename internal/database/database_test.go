package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

// TestApplyDefaults_NilOptions tests that nil options get all defaults
func TestApplyDefaults_NilOptions(t *testing.T) {
	opts := applyDefaults(nil)

	assert.Equal(t, logger.Error, opts.LogLevel)
	assert.Equal(t, 20, opts.MaxOpenConns)
	assert.Equal(t, 10, opts.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, opts.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, opts.ConnMaxIdleTime)
	assert.False(t, opts.SkipAutoMigrate)
}

// TestApplyDefaults_ExplicitValuesKept tests that supplied values survive
func TestApplyDefaults_ExplicitValuesKept(t *testing.T) {
	opts := applyDefaults(&Options{
		LogLevel:     logger.Silent,
		MaxOpenConns: 5,
	})

	assert.Equal(t, logger.Silent, opts.LogLevel)
	assert.Equal(t, 5, opts.MaxOpenConns)
	assert.Equal(t, 10, opts.MaxIdleConns)
}

// TestApplyDefaults_SkipAutoMigrateHonored tests that opting out of
// migration is not overridden by the defaults
func TestApplyDefaults_SkipAutoMigrateHonored(t *testing.T) {
	opts := applyDefaults(&Options{SkipAutoMigrate: true})

	assert.True(t, opts.SkipAutoMigrate)
}
