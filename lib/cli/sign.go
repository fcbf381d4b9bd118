package cli

import (
	"crypto/sha256"
	"os"

	"github.com/spf13/cobra"
)

var (
	signKey        string
	signPassphrase string
	signOut        string
)

var signCmd = &cobra.Command{
	Use:   "sign <file>",
	Short: "Sign a file with a DSA private key",
	Long: `Sign hashes the input file with SHA-256 and signs the digest with the
given private key, writing the DER-encoded signature.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadKeyFile(signKey, signPassphrase)
		if err != nil {
			return err
		}
		msg, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		digest := sha256.Sum256(msg)
		sig, err := key.Sign(digest[:])
		if err != nil {
			return err
		}
		if signOut == "" || signOut == "-" {
			_, err = cmd.OutOrStdout().Write(sig)
			return err
		}
		return os.WriteFile(signOut, sig, 0o644)
	},
}

func init() {
	signCmd.Flags().StringVarP(&signKey, "key", "k", "", "private key file")
	signCmd.Flags().StringVar(&signPassphrase, "passphrase", "", "passphrase for the private key")
	signCmd.Flags().StringVarP(&signOut, "out", "o", "", "signature output file (default stdout)")
	signCmd.MarkFlagRequired("key")
	rootCmd.AddCommand(signCmd)
}
