package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"genwallet/internal/device"
	"genwallet/internal/domain"
	"genwallet/internal/genesis"
	"genwallet/internal/services/signing"
	"genwallet/internal/store"
	"genwallet/internal/wallet"
)

// sign-genesis-txs: build the bond bundle from the arguments, sign every
// record this party holds keys for, and print the signed TOML to stdout.
// Independent parties run this over the same bundle and merge the
// partially-signed outputs out of band.
func signGenesisTxsCmd() *cobra.Command {
	var (
		source          string
		validator       string
		amount          string
		validatorAlias  string
		useDevice       bool
		deviceTransport string
		deviceAddress   string
	)
	cmd := &cobra.Command{
		Use:   "sign-genesis-txs",
		Short: "Sign genesis transactions with every key this wallet holds",
		RunE: func(cmd *cobra.Command, args []string) error {
			primaryDir := store.PreGenesisDir(baseDir)
			primarySt, err := store.NewFileStore(primaryDir).Load()
			if err != nil {
				return fmt.Errorf("unable to load the wallet: %w", err)
			}
			primary := wallet.New(primaryDir, primarySt, prompter, passReader)

			// The validator wallet is best-effort: a missing or broken
			// standalone wallet simply drops that resolution source.
			var validatorWallet *wallet.Wallet
			if validatorAlias != "" {
				dir := store.ValidatorPreGenesisDir(baseDir, validatorAlias)
				if st, err := store.NewFileStore(dir).Load(); err == nil {
					validatorWallet = wallet.New(dir, st, prompter, passReader)
				} else if !errors.Is(err, store.ErrStoreNotFound) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Warning: unable to load the validator wallet:", err)
				}
			}

			var dev domain.DeviceSigner
			if useDevice {
				client, err := device.Dial(device.Transport(deviceTransport), deviceAddress)
				if err != nil {
					return err
				}
				defer client.Close()
				dev = client
			}

			bundle := domain.BondList{Bond: []domain.Bond{{
				Source:    source,
				Validator: validator,
				Amount:    amount,
			}}}
			contents, err := genesis.Serialize(bundle)
			if err != nil {
				return err
			}
			unsigned, err := genesis.ParseUnsigned(contents)
			if err != nil {
				return err
			}

			signed, err := signing.New(primary, validatorWallet, dev).SignTxs(unsigned)
			if err != nil {
				return err
			}
			out, err := genesis.Serialize(signed)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "the bond source account")
	cmd.Flags().StringVar(&validator, "validator", "", "the validator being bonded to")
	cmd.Flags().StringVar(&amount, "amount", "", "the amount of native token to bond")
	cmd.Flags().StringVar(&validatorAlias, "validator-alias", "",
		"optional alias of a standalone validator pre-genesis wallet")
	cmd.Flags().BoolVar(&useDevice, "use-device", false,
		"also sign with the key held on the connected hardware device")
	cmd.Flags().StringVar(&deviceTransport, "device-transport", string(device.TransportHID),
		`device transport: "hid" or "tcp"`)
	cmd.Flags().StringVar(&deviceAddress, "device-address", "127.0.0.1:9998",
		"device address for the tcp transport")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("validator")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
