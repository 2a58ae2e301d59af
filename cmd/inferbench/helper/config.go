package helper

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BinSquare/inferbench/dao"
	"github.com/BinSquare/inferbench/dao/query"
	"github.com/BinSquare/inferbench/pkg/config"
)

// ConfigInitializer wires configuration and database startup.
type ConfigInitializer struct {
	backendConfig *config.Config
}

func NewConfigInitializer() *ConfigInitializer {
	return &ConfigInitializer{
		backendConfig: config.GetConfig(),
	}
}

func (ci *ConfigInitializer) GetBackendConfig() *config.Config {
	return ci.backendConfig
}

// LoadDebugEnvironment reads .debug.env and overrides the listen address
// when running in debug mode.
func (ci *ConfigInitializer) LoadDebugEnvironment() error {
	if gin.Mode() != gin.DebugMode {
		return nil
	}

	err := godotenv.Load(".debug.env")
	if err != nil {
		return err
	}

	be := os.Getenv("INFERBENCH_BE_PORT")
	if be == "" {
		panic("INFERBENCH_BE_PORT is not set")
	}
	ci.backendConfig.ServerAddr = ":" + be

	return nil
}

// InitializeDatabase opens the Postgres connection, applies pending
// migrations and seeds the hardware catalog.
func (ci *ConfigInitializer) InitializeDatabase() error {
	return dao.Migrate(query.GetDB())
}
