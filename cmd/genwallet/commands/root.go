package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"genwallet/internal/config"
	"genwallet/internal/domain"
	"genwallet/internal/passphrase"
	"genwallet/internal/prompt"
)

var (
	baseDir string

	prompter   domain.Prompter
	passReader domain.PassphraseReader
)

func Execute() error {
	root := &cobra.Command{
		Use:   "genwallet",
		Short: "Pre-genesis wallet and genesis transaction signer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if baseDir == "" {
				baseDir = cfg.BaseDir
			}
			if baseDir == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				baseDir = filepath.Join(home, ".genwallet")
			}
			if err := os.MkdirAll(baseDir, 0o700); err != nil {
				return err
			}

			prompter = prompt.NewTerminal()
			passReader = passphrase.NewReader(passphrase.Sources{
				PasswordFile: cfg.WalletPasswordFile,
				Password:     cfg.WalletPassword,
			}, prompter)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&baseDir, "base-dir", "",
		"base directory for wallet and pre-genesis state (env GENWALLET_BASE_DIR, default ~/.genwallet)")

	root.AddCommand(genKeyCmd(), addAddressCmd(), listCmd(),
		initGenesisValidatorCmd(), signGenesisTxsCmd())
	return root.Execute()
}
