package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "user-service", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "userdb", cfg.MongoDatabase)
	assert.Equal(t, "users", cfg.MongoCollection)
	assert.Equal(t, 100_000, cfg.PBKDF2Iterations)
	assert.Equal(t, 5*time.Second, cfg.MongoTimeout)
	assert.True(t, cfg.MailSendEnabled)
	assert.Empty(t, cfg.CORSOrigins())
	assert.Empty(t, cfg.ESAddrs())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "users-api")
	t.Setenv("MONGO_CONNECTION_STRING", "mongodb://db:27017")
	t.Setenv("PBKDF2_ITERATIONS", "250000")
	t.Setenv("MONGO_TIMEOUT", "2s")
	t.Setenv("MAIL_SEND_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("ELASTICSEARCH_ADDRS", "http://es:9200")

	cfg := Load()

	assert.Equal(t, "users-api", cfg.AppName)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, 250_000, cfg.PBKDF2Iterations)
	assert.Equal(t, 2*time.Second, cfg.MongoTimeout)
	assert.False(t, cfg.MailSendEnabled)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins())
	assert.Equal(t, []string{"http://es:9200"}, cfg.ESAddrs())
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PBKDF2_ITERATIONS", "lots")
	t.Setenv("MAIL_SEND_ENABLED", "yep")
	t.Setenv("MONGO_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 100_000, cfg.PBKDF2Iterations)
	assert.True(t, cfg.MailSendEnabled)
	assert.Equal(t, 5*time.Second, cfg.MongoTimeout)
}
