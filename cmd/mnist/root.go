package main

import (
	"os"
	"path/filepath"

	"github.com/magneticio/go-common/logging"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kunimune0893/ML-examples/internal/mnist"
)

// Configuration keys shared by flags, environment and config file.
const (
	keyDir    = "dir"
	keySet    = "set"
	keyGzip   = "gzip"
	keyConfig = "config"
)

func init() {
	logging.Init(os.Stdout, os.Stderr)
}

// newRootCmd builds the command tree with its own configuration.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "mnist",
		Short: "Inspect and export MNIST IDX datasets",
		Long: `Inspect and export MNIST IDX datasets:
  mnist inspect --dir data
  mnist load --start 0 --count 5 --ascii
  mnist render --count 10 --out images
  mnist synth --out data --count 100
  `,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, keyConfig, "", "config file (default is $HOME/.mnist/config.yaml)")
	root.PersistentFlags().BoolVarP(&logging.Verbose, "verbose", "v", false, "Verbose output")
	root.PersistentFlags().String(keyDir, "data", "directory holding the IDX files")
	root.PersistentFlags().String(keySet, string(mnist.SetTest), "file set to read (t10k or train)")
	root.PersistentFlags().Bool(keyGzip, false, "fall back to .gz files when plain files are absent")

	for _, key := range []string{keyDir, keySet, keyGzip} {
		_ = v.BindPFlag(key, root.PersistentFlags().Lookup(key))
	}
	v.SetDefault(keyDir, "data")
	v.SetDefault(keySet, string(mnist.SetTest))

	root.AddCommand(
		newVersionCmd(),
		newInspectCmd(v),
		newLoadCmd(v),
		newRenderCmd(v),
		newSynthCmd(v),
	)
	return root
}

// initConfig reads in the config file and environment variables.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("MNIST")
	v.AutomaticEnv()
	_ = v.BindEnv(keyConfig, "MNISTCONFIG")
	if cfgFile == "" {
		cfgFile = v.GetString(keyConfig)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			logging.Error("Config can not be read due to error: %v\n", err)
			return err
		}
		logging.Info("Using config file: %v\n", v.ConfigFileUsed())
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		logging.Info("Can not find home directory: %v\n", err)
		return nil
	}
	v.AddConfigPath(filepath.Join(home, ".mnist"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err == nil {
		logging.Info("Using config file: %v\n", v.ConfigFileUsed())
	} else {
		logging.Info("No config file loaded: %v\n", err)
	}
	return nil
}

// loadOptions returns the loader options selected by configuration.
func loadOptions(v *viper.Viper) mnist.Options {
	return mnist.Options{
		Set:       mnist.Set(v.GetString(keySet)),
		AllowGzip: v.GetBool(keyGzip),
	}
}
