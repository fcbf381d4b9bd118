package cli

import (
	"encoding/json"

	"github.com/go-i2p/dsapkey/lib/config"
	"github.com/go-i2p/dsapkey/lib/dsa"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	inspectPassphrase string
	inspectFormat     string
	inspectInsecure   bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <keyfile>",
	Short: "Show the components of a DSA key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadKeyFile(args[0], inspectPassphrase)
		if err != nil {
			return err
		}
		cfg := config.NewToolConfigFromViper()
		format := inspectFormat
		if format == "" {
			format = cfg.OutputFormat
		}
		insecure := inspectInsecure || cfg.AllowInsecureDump

		out, err := renderKey(key, format, insecure)
		if err != nil {
			return err
		}
		cmd.Print(out)
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectPassphrase, "passphrase", "", "passphrase for encrypted private keys")
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "", "output format: yaml or json")
	inspectCmd.Flags().BoolVar(&inspectInsecure, "insecure", false, "include the private key component in the output")
	rootCmd.AddCommand(inspectCmd)
}

// renderKey serializes the key components in the requested format. Absent
// components render as null; the private component is withheld unless
// insecure output was requested.
func renderKey(key *dsa.DSAKey, format string, insecure bool) (string, error) {
	out := map[string]interface{}{
		"class": keyClass(key),
	}
	for name, val := range key.Params() {
		if name == "priv_key" && !insecure {
			continue
		}
		if val == nil {
			out[name] = nil
		} else {
			out[name] = val.Text(16)
		}
	}
	if p := key.P(); p != nil {
		out["bits"] = p.BitLen()
	}

	switch format {
	case "json":
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case "", "yaml":
		b, err := yaml.Marshal(out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", oops.Errorf("unknown output format %q", format)
	}
}

func keyClass(key *dsa.DSAKey) string {
	switch {
	case key.IsPrivate():
		return "private"
	case key.IsPublic():
		return "public"
	case key.HasParameters():
		return "parameters"
	default:
		return "empty"
	}
}
