package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "lastmile")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	conf := New()

	require.NoError(t, conf.Validate())
	assert.Equal(t, "memory", conf.Session.Store)
	assert.False(t, conf.Redis.Enabled)
	assert.Equal(t, 500.0, conf.Tracking.GeofenceRadius)
	assert.Equal(t, 15*time.Second, conf.Tracking.Interval)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "lastmile")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("GEOFENCE_RADIUS_METERS", "250.5")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	conf := New()

	require.NoError(t, conf.Validate())
	assert.True(t, conf.Redis.Enabled)
	assert.Equal(t, 250.5, conf.Tracking.GeofenceRadius)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
}

func TestValidate_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "missing postgres credentials", mutate: func(c *Config) { c.Postgres.User = "" }},
		{name: "bad env", mutate: func(c *Config) { c.Env = "dev" }},
		{name: "bad backend url", mutate: func(c *Config) { c.Backend.BaseURL = "not a url" }},
		{name: "unknown session store", mutate: func(c *Config) { c.Session.Store = "file" }},
		{name: "zero radius", mutate: func(c *Config) { c.Tracking.GeofenceRadius = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POSTGRES_USER", "lastmile")
			t.Setenv("POSTGRES_PASSWORD", "secret")

			conf := New()
			tc.mutate(&conf)

			assert.Error(t, conf.Validate())
		})
	}
}
