package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, 15*time.Second, cfg.App.ReadTimeout)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 30*time.Second, cfg.Cache.ReportTTL)
	assert.False(t, cfg.Redis.Enabled())
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("APP_PORT", "8080")
	v.Set("REDIS_HOST", "cache")
	v.Set("REPORT_CACHE_TTL", "not-a-duration")

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Cache.ReportTTL)
}
