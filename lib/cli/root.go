// Package cli implements the dsapkey command line tool: inspection,
// conversion, signing and verification of DSA keys in PEM and DER form.
package cli

import (
	"os"

	"github.com/go-i2p/dsapkey/lib/config"
	"github.com/go-i2p/dsapkey/lib/dsa"
	"github.com/go-i2p/dsapkey/lib/keyio"
	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"
)

var log = logger.GetGoI2PLogger()

var rootCmd = &cobra.Command{
	Use:           "dsapkey",
	Short:         "Work with DSA keys in PEM and DER encodings",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(config.InitConfig)
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "",
		"config file (default $HOME/.dsapkey/config.yaml)")
}

// loadKeyFile reads and parses a key file, decrypting with passphrase when
// the file carries an encrypted private key block.
func loadKeyFile(path, passphrase string) (*dsa.DSAKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Error("Failed to read key file")
		return nil, err
	}
	return keyio.Load(data, []byte(passphrase))
}
