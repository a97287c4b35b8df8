package config

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string `json:"server_port"`
	DatabasePath string `json:"database_path"`
	JWTSecret    string `json:"jwt_secret"`
	Production   bool   `json:"production"`
	TokenTTLDays int    `json:"token_ttl_days"`
}

var (
	instance *Config
	once     sync.Once
)

func generateSecret(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)
}

func getConfigPath() string {
	configDir := os.Getenv("FAMILYHUB_CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			configDir = "."
		} else {
			configDir = filepath.Join(homeDir, ".familyhub")
		}
	}
	return filepath.Join(configDir, "config.json")
}

// GetConfig loads the configuration exactly once. The returned value is
// never mutated after startup.
func GetConfig() *Config {
	once.Do(func() {
		// Populate the environment from a .env file before reading it.
		_ = godotenv.Load()

		instance = &Config{
			ServerPort:   "3001",
			DatabasePath: "",
			JWTSecret:    "",
			Production:   false,
		}

		configPath := getConfigPath()

		// Try to load existing config
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, instance); err != nil {
				// Config file is corrupted, will use defaults
			}
		}

		if instance.TokenTTLDays == 0 {
			instance.TokenTTLDays = 30
		}

		// Generate secrets if not set
		needsSave := false
		if instance.JWTSecret == "" {
			instance.JWTSecret = generateSecret(32)
			needsSave = true
		}
		if instance.DatabasePath == "" {
			configDir := filepath.Dir(configPath)
			instance.DatabasePath = filepath.Join(configDir, "familyhub.db")
			needsSave = true
		}

		// Override with environment variables
		if port := os.Getenv("FAMILYHUB_PORT"); port != "" {
			instance.ServerPort = port
		}
		if dbPath := os.Getenv("FAMILYHUB_DB_PATH"); dbPath != "" {
			instance.DatabasePath = dbPath
		}
		if secret := os.Getenv("FAMILYHUB_JWT_SECRET"); secret != "" {
			instance.JWTSecret = secret
		}
		if os.Getenv("FAMILYHUB_PRODUCTION") == "true" {
			instance.Production = true
		}

		// Save config if we generated new secrets
		if needsSave {
			instance.Save()
		}
	})

	return instance
}

func (c *Config) Save() error {
	configPath := getConfigPath()

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}
