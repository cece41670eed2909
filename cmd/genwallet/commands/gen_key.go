package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"genwallet/internal/crypto"
	"genwallet/internal/domain"
	"genwallet/internal/store"
)

// gen-key: generate a keypair, seal it unless encryption is disabled, and
// alias it in the pre-genesis wallet.
func genKeyCmd() *cobra.Command {
	var (
		alias             string
		force             bool
		unsafeDontEncrypt bool
	)
	cmd := &cobra.Command{
		Use:   "gen-key",
		Short: "Generate a keypair and add it to the wallet under an alias",
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := store.NewFileStore(store.PreGenesisDir(baseDir))
			st, err := fs.LoadOrNew()
			if err != nil {
				return fmt.Errorf("unable to load the wallet: %w", err)
			}

			pwd, err := passReader.ReadAndConfirm(unsafeDontEncrypt)
			if err != nil {
				return err
			}
			priv, pub, err := crypto.Generate(domain.SchemeEd25519)
			if err != nil {
				return err
			}
			kp := domain.StoredKeypair{Public: pub}
			if pwd == "" {
				kp.Secret = &priv
			} else {
				enc, err := crypto.SealSecret(pwd, priv)
				if err != nil {
					return err
				}
				kp.Encrypted = &enc
			}

			stored, ok, err := st.InsertKeypair(prompter, domain.NormalizeAlias(alias), kp, force)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("No key has been added.")
				return nil
			}
			if err := fs.Save(st); err != nil {
				return err
			}
			fmt.Printf("Added key %q.\nPublic key: %s\nAddress: %s\n",
				stored, crypto.EncodePublicKey(pub), crypto.DeriveAddress(pub))
			return nil
		},
	}
	cmd.Flags().StringVar(&alias, "alias", "", "alias for the new key (prompted when empty)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing alias without confirmation")
	cmd.Flags().BoolVar(&unsafeDontEncrypt, "unsafe-dont-encrypt", false,
		"store the key unencrypted (not recommended)")
	return cmd
}
