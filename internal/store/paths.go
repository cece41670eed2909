package store

import "path/filepath"

// PreGenesisDirName is the subdirectory of the base directory holding
// pre-genesis wallets.
const PreGenesisDirName = "pre-genesis"

// PreGenesisDir returns the directory of the primary pre-genesis wallet.
func PreGenesisDir(baseDir string) string {
	return filepath.Join(baseDir, PreGenesisDirName)
}

// ValidatorPreGenesisDir returns the directory of a validator's standalone
// pre-genesis wallet.
func ValidatorPreGenesisDir(baseDir, alias string) string {
	return filepath.Join(baseDir, PreGenesisDirName, alias)
}
