package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_KEY", "value")
	assert.Equal(t, "value", GetEnvOrDefault("TEST_KEY", "fallback"))

	t.Setenv("TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnvOrDefault("TEST_KEY", "fallback"))
}

func TestFeatureToggles(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("REDIS_ADDRESS", "")
	assert.False(t, MongoEnabled())
	assert.False(t, RedisEnabled())

	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	assert.True(t, MongoEnabled())
	assert.True(t, RedisEnabled())
}

func TestResponseEnvelopes(t *testing.T) {
	success := SuccessResponse("payload")
	assert.True(t, success.Success)
	assert.Equal(t, "payload", success.Data)

	failure := ErrorResponse("boom", []ValidationError{{Field: "x", Message: "bad"}})
	assert.False(t, failure.Success)
	assert.Equal(t, "boom", failure.Message)
	assert.Len(t, failure.Errors, 1)
}
