package cli

import (
	"os"

	"github.com/go-i2p/dsapkey/lib/config"
	"github.com/go-i2p/dsapkey/lib/keyio"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var (
	convertInPassphrase  string
	convertOutPassphrase string
	convertOutForm       string
	convertCipher        string
	convertOut           string
)

var convertCmd = &cobra.Command{
	Use:   "convert <keyfile>",
	Short: "Re-encode a DSA key between PEM and DER",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadKeyFile(args[0], convertInPassphrase)
		if err != nil {
			return err
		}

		var out []byte
		switch convertOutForm {
		case "der":
			out, err = keyio.ExportDER(key)
		case "pem":
			cipher := convertCipher
			if convertOutPassphrase != "" && cipher == "" {
				cipher = config.NewToolConfigFromViper().Cipher
			}
			out, err = keyio.ExportPEM(key, cipher, []byte(convertOutPassphrase))
		default:
			return oops.Errorf("unknown output form %q", convertOutForm)
		}
		if err != nil {
			return err
		}

		if convertOut == "" || convertOut == "-" {
			cmd.Print(string(out))
			return nil
		}
		return os.WriteFile(convertOut, out, 0o600)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertInPassphrase, "passphrase", "", "passphrase for the input key")
	convertCmd.Flags().StringVar(&convertOutPassphrase, "out-passphrase", "", "passphrase to encrypt the output private key")
	convertCmd.Flags().StringVar(&convertCipher, "cipher", "", "PEM cipher for encrypted output (e.g. AES-256-CBC)")
	convertCmd.Flags().StringVar(&convertOutForm, "outform", "pem", "output form: pem or der")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(convertCmd)
}
