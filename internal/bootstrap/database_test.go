package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bintangginanjar/ez-commerce-api/config"
)

func TestConnectRedis_EmptyURIDisablesCache(t *testing.T) {
	client, err := ConnectRedis(config.RedisConfig{URI: "   "}, nil)
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestIsRedisURL(t *testing.T) {
	assert.True(t, isRedisURL("redis://localhost:6379"))
	assert.True(t, isRedisURL("rediss://cache.example.com:6380"))
	assert.False(t, isRedisURL("localhost:6379"))
	assert.False(t, isRedisURL(""))
}
