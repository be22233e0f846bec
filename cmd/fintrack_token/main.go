// Command fintrack_token mints a bearer token for local use of the API.
//
//	go run ./cmd/fintrack_token -user alice -ttl 24h
//
// The secret and issuer come from the same configuration as the server.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/fintrack/internal/logging"
	"github.com/SscSPs/fintrack/internal/platform/config"
	"github.com/SscSPs/fintrack/internal/utils"
)

func main() {
	userID := flag.String("user", "", "owner id placed in the token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	token, err := utils.IssueAccessToken(*userID, cfg.JWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		flag.Usage()
		os.Exit(2)
	}
	fmt.Println(token)
}
