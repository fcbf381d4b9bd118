package cli

import (
	"crypto/sha256"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var (
	verifyKey        string
	verifyPassphrase string
	verifySig        string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Verify a DSA signature over a file",
	Long: `Verify hashes the input file with SHA-256 and checks the DER-encoded
signature against the digest using the key's public component.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadKeyFile(verifyKey, verifyPassphrase)
		if err != nil {
			return err
		}
		msg, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		sig, err := os.ReadFile(verifySig)
		if err != nil {
			return err
		}
		digest := sha256.Sum256(msg)
		ok, err := key.Verify(digest[:], sig)
		if err != nil {
			return err
		}
		if !ok {
			return oops.Errorf("signature does not verify")
		}
		cmd.Println("signature verified")
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyKey, "key", "k", "", "key file (public or private)")
	verifyCmd.Flags().StringVar(&verifyPassphrase, "passphrase", "", "passphrase for the key")
	verifyCmd.Flags().StringVarP(&verifySig, "sig", "s", "", "signature file")
	verifyCmd.MarkFlagRequired("key")
	verifyCmd.MarkFlagRequired("sig")
	rootCmd.AddCommand(verifyCmd)
}
