package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"genwallet/internal/crypto"
	"genwallet/internal/domain"
	"genwallet/internal/services/provision"
	"genwallet/internal/store"
	"genwallet/internal/wallet"
)

// init-genesis-validator: build a validator key bundle, reusing keys the
// primary pre-genesis wallet already holds, and persist it as the
// validator's standalone pre-genesis wallet under pre-genesis/<alias>.
func initGenesisValidatorCmd() *cobra.Command {
	var (
		alias       string
		protocolPK  string
		ethBridgePK string
	)
	cmd := &cobra.Command{
		Use:   "init-genesis-validator",
		Short: "Provision validator keys into a standalone pre-genesis wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if alias == "" {
				return fmt.Errorf("a validator alias is required (--alias)")
			}
			primaryFS := store.NewFileStore(store.PreGenesisDir(baseDir))
			primarySt, err := primaryFS.LoadOrNew()
			if err != nil {
				return fmt.Errorf("unable to load the wallet: %w", err)
			}
			primary := wallet.New(store.PreGenesisDir(baseDir), primarySt, prompter, passReader)

			var protoPK, ethPK *domain.PublicKey
			if protocolPK != "" {
				pk, err := crypto.ParsePublicKey(protocolPK)
				if err != nil {
					return err
				}
				protoPK = &pk
			}
			if ethBridgePK != "" {
				pk, err := crypto.ParsePublicKey(ethBridgePK)
				if err != nil {
					return err
				}
				ethPK = &pk
			}

			keys, err := provision.GenValidatorKeys(primary, ethPK, protoPK, domain.SchemeEd25519)
			if err != nil {
				return err
			}

			validatorDir := store.ValidatorPreGenesisDir(baseDir, alias)
			validatorFS := store.NewFileStore(validatorDir)
			validatorSt, err := validatorFS.LoadOrNew()
			if err != nil {
				return fmt.Errorf("unable to load the validator wallet: %w", err)
			}
			vw := wallet.New(validatorDir, validatorSt, prompter, passReader)

			addr := crypto.DeriveAddress(keys.Protocol.Public)
			vw.SetValidatorData(domain.ValidatorData{Address: addr, Keys: keys})
			normalized := domain.NormalizeAlias(alias)
			if _, _, err := validatorSt.InsertKeypair(prompter, normalized, keys.Protocol, true); err != nil {
				return err
			}
			if err := validatorFS.Save(validatorSt); err != nil {
				return err
			}
			fmt.Printf("Validator %q initialized.\nAddress: %s\nProtocol key: %s\nEth-bridge key: %s\n",
				alias, addr,
				crypto.EncodePublicKey(keys.Protocol.Public),
				crypto.EncodePublicKey(keys.EthBridge.Public))
			return nil
		},
	}
	cmd.Flags().StringVar(&alias, "alias", "", "validator alias (names the pre-genesis subdirectory)")
	cmd.Flags().StringVar(&protocolPK, "protocol-pk", "",
		"reuse the wallet key matching this public key for the protocol role")
	cmd.Flags().StringVar(&ethBridgePK, "eth-bridge-pk", "",
		"reuse the wallet key matching this public key for the eth-bridge role")
	return cmd
}
