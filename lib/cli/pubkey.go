package cli

import (
	"os"

	"github.com/go-i2p/dsapkey/lib/keyio"
	"github.com/spf13/cobra"
)

var (
	pubkeyPassphrase string
	pubkeyOpenSSH    bool
	pubkeyComment    string
	pubkeyOut        string
)

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey <keyfile>",
	Short: "Extract the public half of a DSA key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadKeyFile(args[0], pubkeyPassphrase)
		if err != nil {
			return err
		}

		var out []byte
		if pubkeyOpenSSH {
			out, err = keyio.ExportOpenSSH(key, pubkeyComment)
		} else {
			pub := key.Copy()
			if y, _ := pub.Key(); y != nil {
				// Drop the private component before export so the
				// SubjectPublicKeyInfo form is selected.
				if err := pub.SetKey(y, nil); err != nil {
					return err
				}
			}
			out, err = keyio.ExportPEM(pub, "", nil)
		}
		if err != nil {
			return err
		}

		if pubkeyOut == "" || pubkeyOut == "-" {
			cmd.Print(string(out))
			return nil
		}
		return os.WriteFile(pubkeyOut, out, 0o644)
	},
}

func init() {
	pubkeyCmd.Flags().StringVar(&pubkeyPassphrase, "passphrase", "", "passphrase for the input key")
	pubkeyCmd.Flags().BoolVar(&pubkeyOpenSSH, "openssh", false, "emit an OpenSSH authorized_keys line")
	pubkeyCmd.Flags().StringVar(&pubkeyComment, "comment", "", "comment for the OpenSSH line")
	pubkeyCmd.Flags().StringVarP(&pubkeyOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(pubkeyCmd)
}
