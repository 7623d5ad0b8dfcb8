package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/camertanev/FraudDetect-Z/internal/flagx"
	"github.com/camertanev/FraudDetect-Z/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	LedgerEndpointAddr  string         `json:"ledger_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	FraudThreshold      uint64         `json:"fraud_threshold"`
	Destination         string         `json:"destination"`
	CacheDSN            string         `json:"cache_dsn"`
	SealingSecret       string         `json:"sealing_secret"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Zero-valued JSON fields do not clobber existing Config values, so a partial
// file can override just the settings it names. Panics on read or unmarshal
// errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.LedgerEndpointAddr != "" {
		cfg.LedgerEndpointAddr = jc.LedgerEndpointAddr
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.FraudThreshold != 0 {
		cfg.FraudThreshold = jc.FraudThreshold
	}
	if jc.Destination != "" {
		cfg.Destination = jc.Destination
	}
	if jc.CacheDSN != "" {
		cfg.CacheDSN = jc.CacheDSN
	}
	if jc.SealingSecret != "" {
		cfg.SealingSecret = jc.SealingSecret
	}
}
