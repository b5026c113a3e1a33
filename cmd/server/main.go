package main // Entry point package

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/itektr/turkish-spellchecker/internal/config"
	"github.com/itektr/turkish-spellchecker/internal/database"
	"github.com/itektr/turkish-spellchecker/internal/handler"
	"github.com/itektr/turkish-spellchecker/internal/middleware"
	"github.com/itektr/turkish-spellchecker/internal/queue"
	"github.com/itektr/turkish-spellchecker/internal/repository"
	"github.com/itektr/turkish-spellchecker/internal/router"
	"github.com/itektr/turkish-spellchecker/internal/speller"
)

func main() {
	// .env is optional; containers get everything from real env vars.
	_ = godotenv.Load()

	cfg := config.Load()

	lex := speller.NewLexicon()
	loadLexicon(cfg, lex)
	checker := speller.NewChecker(lex)

	// Database is optional: without it the service is check-only.
	var (
		users      *repository.UserRepo
		tokens     *repository.TokenRepo
		dictionary handler.DictionaryStore
	)
	if cfg.HasDB() {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		users = repository.NewUserRepo(db)
		tokens = repository.NewTokenRepo(db)
		dictRepo := repository.NewDictionaryRepo(db)
		dictionary = dictRepo
		mergeCustomWords(dictRepo, lex)
	} else {
		log.Printf("no database configured; auth and dictionary endpoints disabled")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}
	rate := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	if queue.BrokerURL() != "" {
		// Drain check.performed into logs/checks.log in the background.
		go func() {
			if err := queue.StartCheckConsumer(); err != nil {
				log.Printf("check-consumer stopped: %v", err)
			}
		}()
	} else {
		log.Printf("no rabbitmq configured; check events disabled")
	}

	e := echo.New()
	e.HideBanner = true
	router.BaseMiddleware(e)

	router.RegisterPublic(e, handler.NewHealthHandler(checker), handler.NewCheckHandler(cfg, checker), rate, cache)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterDictionary(e, handler.NewDictionaryHandler(dictionary, lex), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, lexicon=%d words)", addr, cfg.Env, lex.Size())
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// loadLexicon fills the lexicon from the first configured source that
// works: S3 object, local file, embedded default list. Failures fall
// through to the next source so a bad deployment still answers /check.
func loadLexicon(cfg config.Config, lex *speller.Lexicon) {
	if cfg.LexiconS3Bucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if body, err := speller.FetchS3(ctx, cfg.LexiconS3Bucket, cfg.LexiconS3Key); err != nil {
			log.Printf("lexicon: s3 fetch failed: %v; falling back", err)
		} else {
			n, err := lex.Load(body)
			_ = body.Close()
			if err == nil {
				log.Printf("lexicon: loaded %d words from s3://%s/%s", n, cfg.LexiconS3Bucket, cfg.LexiconS3Key)
				return
			}
			log.Printf("lexicon: s3 read failed: %v; falling back", err)
		}
	}

	if cfg.LexiconPath != "" {
		if f, err := os.Open(cfg.LexiconPath); err != nil {
			log.Printf("lexicon: open %s failed: %v; falling back", cfg.LexiconPath, err)
		} else {
			n, err := lex.Load(f)
			_ = f.Close()
			if err == nil {
				log.Printf("lexicon: loaded %d words from %s", n, cfg.LexiconPath)
				return
			}
			log.Printf("lexicon: read %s failed: %v; falling back", cfg.LexiconPath, err)
		}
	}

	n := lex.LoadDefault()
	log.Printf("lexicon: loaded %d embedded words", n)
}

// mergeCustomWords folds the active custom dictionary entries into the
// lexicon at startup.
func mergeCustomWords(repo *repository.DictionaryRepo, lex *speller.Lexicon) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entries, err := repo.ListActive(ctx)
	if err != nil {
		log.Printf("dictionary: load custom words failed: %v", err)
		return
	}
	for _, e := range entries {
		lex.Add(e.Normalized)
	}
	if len(entries) > 0 {
		log.Printf("dictionary: merged %d custom words", len(entries))
	}
}
