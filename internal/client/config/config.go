package config

import (
	"time"

	"github.com/camertanev/FraudDetect-Z/internal/common"
)

// Config holds runtime settings for the FraudDetect-Z CLI.
//
// Fields:
//   - LedgerEndpointAddr: host:port of the claim ledger gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes ledger reachability.
//   - FraudThreshold: verified-amount threshold for the fraud heuristic.
//   - Destination: the destination contract/context the gateway binds
//     ciphertexts to; must match the ledger deployment.
//   - CacheDSN: SQLite DSN of the local claim cache.
//   - SealingSecret: dev gateway passphrase (development deployments only).
type Config struct {
	LedgerEndpointAddr  string
	OnlineCheckInterval time.Duration
	FraudThreshold      uint64
	Destination         string
	CacheDSN            string
	SealingSecret       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LedgerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.FraudThreshold = common.DefaultFraudThreshold
	c.Destination = "claims-v1"
	c.CacheDSN = "claims.db"
	c.SealingSecret = "dev-sealing-secret"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
