package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "FUNDAMENTAL"

// configNamespace is the command annotation that nests the command's own
// flags under a config section, e.g. tone --output becomes tone.output.
const configNamespace = "config_namespace"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	stderr  io.Writer

	cfg *Config
	log *logrus.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stderr: stderr}

	root := &cobra.Command{
		Use:   "fundamental",
		Short: "Frame-wise fundamental frequency analysis",
		Long: `Splits an audio file into fixed-size, non-overlapping frames and reports
for each frame the frequency bin of greatest magnitude and its level in dB.

Frames are not windowed. A silent frame is reported as frequency 0 with an
amplitude of -Infinity.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "",
		"config file (default is ./fundamental.yaml or $HOME/.config/fundamental/fundamental.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output (debug logging)")

	root.AddCommand(newAnalyzeCmd(a), newInfoCmd(a), newToneCmd(a))
	return root
}

// initialize merges config file, environment and flags and sets up logging.
func (a *app) initialize(cmd *cobra.Command) error {
	if err := a.readConfigFile(); err != nil {
		return err
	}
	if err := bindFlags(cmd, a.v); err != nil {
		return err
	}

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	log, err := newLogger(a.stderr, cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log

	if used := a.v.ConfigFileUsed(); used != "" {
		log.WithField("path", used).Debug("using config file")
	}
	return nil
}

func (a *app) readConfigFile() error {
	v := a.v
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.SetConfigName("fundamental")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "fundamental"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// bindFlags binds each cobra flag to its viper key. Dashes in flag names
// become underscores in keys, and the local flags of a namespaced command
// are keyed under that namespace. A value from the config file or
// environment is applied to any flag not set on the command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error
	ns := cmd.Annotations[configNamespace]
	local := cmd.LocalNonPersistentFlags()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if ns != "" && local.Lookup(f.Name) != nil {
			key = ns + "." + key
		}
		env := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))

		if !f.Changed && v.IsSet(key) {
			val := v.Get(key)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				lastErr = fmt.Errorf("apply %s: %w", key, err)
			}
		}

		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}

		if err := v.BindEnv(key, env); err != nil {
			lastErr = err
		}
	})

	return lastErr
}
