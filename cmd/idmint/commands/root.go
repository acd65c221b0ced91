// Package commands implements the idmint command tree.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/viant/idmint"
	"github.com/viant/idmint/internal/logging"
)

// Flags shared by every command.
type globalFlags struct {
	configURL    string
	registryPath string
	namespace    string
	idLength     int
	noUnique     bool
	logLevel     string
}

// config builds the service configuration: the config file when given, then
// any explicitly set flags on top.
func (g *globalFlags) config(cmd *cobra.Command) (*idmint.Config, error) {
	ret := idmint.DefaultConfig()
	if g.configURL != "" {
		loaded, err := idmint.LoadConfig(cmd.Context(), g.configURL)
		if err != nil {
			return nil, err
		}
		ret = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("registry") {
		ret.RegistryPath = g.registryPath
	}
	if flags.Changed("namespace") {
		ret.Namespace = g.namespace
	}
	if flags.Changed("length") {
		ret.IDLength = g.idLength
	}
	if flags.Changed("no-unique") {
		ret.EnsureUnique = !g.noUnique
	}
	if flags.Changed("log-level") {
		ret.LogLevel = g.logLevel
	}
	return ret, nil
}

// NewRootCmd returns the idmint command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "idmint",
		Short: "Issue short content-derived identifiers",
		Long: `idmint hashes record content together with a timestamp into short hex
identifiers, optionally scoped to a namespace, and keeps a registry per
namespace so an identifier is never issued twice.`,
		SilenceUsage: true,
		Example: `  # Create an empty registry for the places namespace
  idmint init places --registry /var/lib/idmint

  # Issue identifiers for two records
  idmint make Athens Sparta --registry /var/lib/idmint --namespace places

  # Hash without registry checks
  idmint make --no-unique foo`,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configURL, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&flags.registryPath, "registry", "r", "", "directory holding namespace registry files")
	pf.StringVarP(&flags.namespace, "namespace", "n", "", "namespace for issued identifiers")
	pf.IntVarP(&flags.idLength, "length", "l", 3, "digest length in bytes")
	pf.BoolVar(&flags.noUnique, "no-unique", false, "skip registry uniqueness checks")
	pf.StringVar(&flags.logLevel, "log-level", logging.DefaultLevel, "log level: debug, info, warn, error")

	root.AddCommand(newMakeCmd(flags))
	root.AddCommand(newInitCmd(flags))
	return root
}
