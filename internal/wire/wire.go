// Package wire provides dependency injection for the taskboard application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	cliadapter "github.com/example/taskboard/internal/adapters/cli"
	"github.com/example/taskboard/internal/adapters/idgen"
	"github.com/example/taskboard/internal/adapters/rediscache"
	"github.com/example/taskboard/internal/adapters/sqlite"
	"github.com/example/taskboard/internal/app"
	"github.com/example/taskboard/internal/config"
	projectctx "github.com/example/taskboard/internal/context"
	"github.com/example/taskboard/internal/db"
	"github.com/example/taskboard/internal/ports/primary"
	"github.com/example/taskboard/internal/ports/secondary"
)

var (
	cfg        *config.Config
	boardStore primary.BoardStore
	once       sync.Once
)

// Config returns the loaded configuration for the working directory.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// BoardStore returns the singleton BoardStore instance.
func BoardStore() primary.BoardStore {
	once.Do(initServices)
	return boardStore
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	root, err := projectctx.ProjectRoot()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}
	cfg, err = config.LoadConfig(root)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithField("log_level", cfg.LogLevel).Warn("unknown log level, keeping default")
	}

	database, err := db.GetDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	var repo secondary.BoardRepository = sqlite.NewBoardRepository(database, idgen.NewUUIDGenerator("BOARD"))
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to parse redis url: %v", err)
		}
		repo = rediscache.NewCache(repo, redis.NewClient(opts), cfg.CacheTTL)
	}

	logger := log.StandardLogger()
	boardStore = app.NewBoardStore(repo, idgen.NewUUIDGenerator(""), logger, nil)
}

// BoardAdapter returns a new BoardAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func BoardAdapter() *cliadapter.BoardAdapter {
	return BoardAdapterWithOutput(os.Stdout)
}

// BoardAdapterWithOutput returns a new BoardAdapter writing to the given output.
func BoardAdapterWithOutput(out io.Writer) *cliadapter.BoardAdapter {
	once.Do(initServices)
	return cliadapter.NewBoardAdapter(boardStore, out)
}
