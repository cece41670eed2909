// Package config reads boundary configuration from the environment exactly
// once. Components never consult the environment themselves; values are
// threaded in at construction time.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
)

// Config carries everything the binary takes from the environment.
type Config struct {
	// BaseDir is the root under which wallet and pre-genesis state live.
	// The --base-dir flag takes precedence when set.
	BaseDir string `envconfig:"BASE_DIR"`

	// WalletPasswordFile points at a file whose entire content is the
	// wallet password. Non-nil whenever the variable is set, even to an
	// empty value: a configured source is used exclusively, and a read
	// failure there is fatal, not a fallback trigger.
	WalletPasswordFile *string `ignored:"true"`

	// WalletPassword holds the wallet password literally. Non-nil whenever
	// the variable is set; consulted only when WalletPasswordFile is unset.
	WalletPassword *string `ignored:"true"`
}

// FromEnv populates a Config from GENWALLET_* environment variables. The
// password variables are looked up directly because set-but-empty must be
// distinguishable from unset: an empty configured password is a policy
// violation, not an invitation to fall through to the prompt.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("genwallet", &cfg); err != nil {
		return Config{}, fmt.Errorf("process config: %w", err)
	}
	if v, ok := os.LookupEnv("GENWALLET_WALLET_PASSWORD_FILE"); ok {
		cfg.WalletPasswordFile = &v
	}
	if v, ok := os.LookupEnv("GENWALLET_WALLET_PASSWORD"); ok {
		cfg.WalletPassword = &v
	}
	return cfg, nil
}
