package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Every field has a
// default so the container starts with zero configuration; hosting
// platforms only need to inject PORT. The database block is optional:
// when DB_HOST is unset the service runs check-only and the auth and
// dictionary endpoints report 503.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	MaxTextLen         int // maximum /check text length in characters
	MaxWordLen         int // maximum /check-word word length in characters
	DefaultSuggestions int // suggestion count when the request omits max_suggestions

	LexiconPath     string // local word-list file (optional)
	LexiconS3Bucket string // S3 bucket holding the word list (optional)
	LexiconS3Key    string // S3 object key of the word list

	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host address; empty disables the database
	DBPort string // database port number
	DBName string // database name

	JWTSecret      string // secret used to sign JWTs; empty disables auth
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing
}

// Load reads configuration from environment variables, falling back to
// defaults. PORT wins over APP_PORT because Render and Railway both
// inject PORT.
func Load() Config {
	port := envStr("PORT", "")
	if port == "" {
		port = envStr("APP_PORT", "8080")
	}
	return Config{
		Env:  envStr("APP_ENV", "dev"),
		Port: port,

		MaxTextLen:         envInt("MAX_TEXT_LEN", 10000),
		MaxWordLen:         envInt("MAX_WORD_LEN", 100),
		DefaultSuggestions: envInt("DEFAULT_SUGGESTIONS", 5),

		LexiconPath:     envStr("LEXICON_PATH", ""),
		LexiconS3Bucket: envStr("LEXICON_S3_BUCKET", ""),
		LexiconS3Key:    envStr("LEXICON_S3_KEY", "lexicon/words_tr.txt"),

		DBUser: envStr("DB_USER", ""),
		DBPass: os.Getenv("DB_PASS"), // empty allowed
		DBHost: envStr("DB_HOST", ""),
		DBPort: envStr("DB_PORT", "3306"),
		DBName: envStr("DB_NAME", ""),

		JWTSecret:      envStr("JWT_SECRET", ""),
		AccessTTLMin:   envInt("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTTLDays: envInt("REFRESH_TOKEN_TTL_DAYS", 30),
		BcryptCost:     envInt("BCRYPT_COST", 12),
	}
}

// HasDB reports whether enough database settings are present to open a
// connection.
func (c Config) HasDB() bool {
	return c.DBHost != "" && c.DBUser != "" && c.DBName != ""
}

// Shared env helpers used by the redis, rate limit and cache configs.

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
