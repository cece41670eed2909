package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"genwallet/internal/crypto"
	"genwallet/internal/domain"
	"genwallet/internal/store"
)

// list: print the aliased keys and addresses of the pre-genesis wallet.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wallet keys and addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := store.NewFileStore(store.PreGenesisDir(baseDir))
			st, err := fs.LoadOrNew()
			if err != nil {
				return fmt.Errorf("unable to load the wallet: %w", err)
			}

			keyAliases := make([]string, 0, len(st.Keys))
			for alias := range st.Keys {
				keyAliases = append(keyAliases, string(alias))
			}
			sort.Strings(keyAliases)
			if len(keyAliases) > 0 {
				fmt.Println("Keys:")
			}
			for _, alias := range keyAliases {
				kp := st.Keys[domain.Alias(alias)]
				sealed := ""
				if kp.IsEncrypted() {
					sealed = " (encrypted)"
				}
				fmt.Printf("  %s%s: %s\n", alias, sealed, crypto.EncodePublicKey(kp.Public))
			}

			addrAliases := make([]string, 0, len(st.Addresses))
			for alias := range st.Addresses {
				addrAliases = append(addrAliases, string(alias))
			}
			sort.Strings(addrAliases)
			if len(addrAliases) > 0 {
				fmt.Println("Addresses:")
			}
			for _, alias := range addrAliases {
				fmt.Printf("  %s: %s\n", alias, st.Addresses[domain.Alias(alias)])
			}

			if st.Validator != nil {
				fmt.Printf("Validator: %s (scheme %s)\n",
					st.Validator.Address, st.Validator.Keys.Scheme)
			}
			return nil
		},
	}
}
