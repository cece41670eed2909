package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"genwallet/internal/domain"
	"genwallet/internal/store"
)

// add-address: alias an address in the pre-genesis wallet.
func addAddressCmd() *cobra.Command {
	var (
		alias   string
		address string
		force   bool
	)
	cmd := &cobra.Command{
		Use:   "add-address",
		Short: "Add an address to the wallet under an alias",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address == "" {
				return fmt.Errorf("an address is required (--address)")
			}
			fs := store.NewFileStore(store.PreGenesisDir(baseDir))
			st, err := fs.LoadOrNew()
			if err != nil {
				return fmt.Errorf("unable to load the wallet: %w", err)
			}
			stored, ok, err := st.InsertAddress(
				prompter, domain.NormalizeAlias(alias), domain.Address(address), force)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("No address has been added.")
				return nil
			}
			if err := fs.Save(st); err != nil {
				return err
			}
			fmt.Printf("Added address %q: %s\n", stored, address)
			return nil
		},
	}
	cmd.Flags().StringVar(&alias, "alias", "", "alias for the address (prompted when empty)")
	cmd.Flags().StringVar(&address, "address", "", "the address to store")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing alias without confirmation")
	return cmd
}
