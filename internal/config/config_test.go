package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "30 5 * * *", cfg.CronSchedule)
	require.Equal(t, "Asia/Kolkata", cfg.Timezone)
	require.Equal(t, 30*time.Minute, cfg.RunTimeout)
	require.Equal(t, 8, cfg.MaxConcurrentSources)
	require.Equal(t, 9091, cfg.HealthPort)
	require.NoError(t, cfg.Validate())
}

func TestDefaultConfig_Immutability(t *testing.T) {
	c1 := DefaultConfig()
	c2 := DefaultConfig()

	c1.CronSchedule = "0 6 * * *"
	c1.MaxConcurrentSources = 64

	require.Equal(t, "30 5 * * *", c2.CronSchedule)
	require.Equal(t, 8, c2.MaxConcurrentSources)
}

func TestConfig_Validate_RejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CronSchedule = "not a cron"
	cfg.MaxConcurrentSources = 0
	cfg.RelevanceThreshold = 2

	err := cfg.Validate()
	require.Error(t, err)
}

func TestLoad_FailsOpenOnInvalidEnv(t *testing.T) {
	os.Setenv("CRON_SCHEDULE", "garbage")
	os.Setenv("RADAR_MAX_CONCURRENT_SOURCES", "not-an-int")
	os.Setenv("RADAR_DB_PATH", "/tmp/radar-test.db")
	defer os.Unsetenv("CRON_SCHEDULE")
	defer os.Unsetenv("RADAR_MAX_CONCURRENT_SOURCES")
	defer os.Unsetenv("RADAR_DB_PATH")

	logger := discardLogger()
	cfg := Load(logger, nil)

	require.Equal(t, "30 5 * * *", cfg.CronSchedule, "invalid cron falls back to default")
	require.Equal(t, 8, cfg.MaxConcurrentSources, "unparsable int falls back to default")
	require.Equal(t, "/tmp/radar-test.db", cfg.DatabasePath, "valid string passes through")
	require.NoError(t, cfg.Validate())
}

func TestLoad_AcceptsValidOverrides(t *testing.T) {
	os.Setenv("RADAR_MAX_CONCURRENT_SOURCES", "4")
	os.Setenv("RADAR_HEALTH_PORT", "9200")
	defer os.Unsetenv("RADAR_MAX_CONCURRENT_SOURCES")
	defer os.Unsetenv("RADAR_HEALTH_PORT")

	cfg := Load(discardLogger(), nil)

	require.Equal(t, 4, cfg.MaxConcurrentSources)
	require.Equal(t, 9200, cfg.HealthPort)
}
