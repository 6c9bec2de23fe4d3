package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so tests see a clean environment
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
		"METADATA_BACKEND", "STORAGE_BACKEND", "MEDIA_BASE_PATH",
		"FFPROBE_PATH", "MAX_UPLOAD_SIZE",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"S3_BUCKET", "S3_REGION", "S3_ACCESS_KEY", "S3_ACCESS_SECRET", "S3_ENDPOINT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEDIA_BASE_PATH", "/var/media")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, MetadataBackendMemory, cfg.MetadataBackend)
	assert.Equal(t, StorageBackendLocal, cfg.StorageBackend)
	assert.Equal(t, "/var/media", cfg.MediaBasePath)
	assert.Equal(t, int64(defaultMaxUploadSize), cfg.MaxUploadSize)
}

func TestLoad_LocalStorageRequiresBasePath(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "MEDIA_BASE_PATH")
}

func TestLoad_MySQLBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEDIA_BASE_PATH", "/var/media")
	t.Setenv("METADATA_BACKEND", "mysql")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "mediahub")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "mediahub")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, MetadataBackendMySQL, cfg.MetadataBackend)
	assert.Equal(t, "mediahub:secret@tcp(localhost:3306)/mediahub?parseTime=true", cfg.DSN())
}

func TestLoad_MySQLBackendMissingVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEDIA_BASE_PATH", "/var/media")
	t.Setenv("METADATA_BACKEND", "mysql")
	t.Setenv("DB_HOST", "localhost")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestLoad_S3Backend(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("S3_BUCKET", "media")
	t.Setenv("S3_REGION", "eu-central-1")
	t.Setenv("S3_ACCESS_KEY", "key")
	t.Setenv("S3_ACCESS_SECRET", "secret")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageBackendS3, cfg.StorageBackend)
	assert.Equal(t, "media", cfg.S3.Bucket)
	assert.Equal(t, "http://localhost:9000", cfg.S3.Endpoint)
}

func TestLoad_S3BackendMissingBucket(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "s3")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "S3_BUCKET")
}

func TestLoad_InvalidBackends(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown metadata backend", key: "METADATA_BACKEND", value: "etcd"},
		{name: "unknown storage backend", key: "STORAGE_BACKEND", value: "tape"},
		{name: "bad server port", key: "SERVER_PORT", value: "not-a-port"},
		{name: "bad upload size", key: "MAX_UPLOAD_SIZE", value: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("MEDIA_BASE_PATH", "/var/media")
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_CORSOriginsParsed(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEDIA_BASE_PATH", "/var/media")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://hub.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:3000", "https://hub.example.com"}, cfg.CORS.AllowedOrigins)
}
