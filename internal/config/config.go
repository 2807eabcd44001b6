package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config aggregates configuration for the binaries in this module.
type Config struct {
	Server ServerConfig
	Client ClientConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	client, err := loadClientConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Client: client}, nil
}

// ServerConfig describes the development stub server.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// ClientConfig describes how the chat client reaches the backend and
// where it persists local state.
type ClientConfig struct {
	// BaseURL is the HTTP base of the chat backend.
	BaseURL string
	// WSBase is the live-connection base, derived from BaseURL.
	WSBase string
	// SessionsFile is the JSON file holding client-local state such as
	// the session registry.
	SessionsFile string
}

func loadClientConfig() (ClientConfig, error) {
	baseURL := getEnvOrDefault("CHAT_BASE_URL", "http://localhost:8080")
	baseURL = strings.TrimRight(baseURL, "/")

	sessionsFile := strings.TrimSpace(os.Getenv("CHAT_SESSIONS_FILE"))
	if sessionsFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ClientConfig{}, fmt.Errorf("resolve home dir: %w", err)
		}
		sessionsFile = filepath.Join(home, ".bookstore-chat", "sessions.json")
	}

	return ClientConfig{
		BaseURL:      baseURL,
		WSBase:       WSBaseFor(baseURL),
		SessionsFile: sessionsFile,
	}, nil
}

// WSBaseFor maps an HTTP base URL to its websocket counterpart.
func WSBaseFor(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return baseURL
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
