// Package config loads runtime configuration for the FraudDetect-Z CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the claim ledger gRPC endpoint
//	-i int      online status check interval (seconds)
//	-t uint     fraud amount threshold
//	-d string   destination contract identifier
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "ledger_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "fraud_threshold": 10000,
//	  "destination": "claims-v1",
//	  "cache_dsn": "claims.db",
//	  "sealing_secret": "dev-sealing-secret"
//	}
//
// Primary API
//
//   - type Config                     — holds ledger address, intervals and thresholds
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
