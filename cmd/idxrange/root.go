package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "IDXRANGE"

type rootOptions struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{
		v:   viper.New(),
		log: logrus.New(),
	}

	cmd := &cobra.Command{
		Use:          "idxrange",
		Short:        "query closed id ranges",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.init(cmd)
		},
	}
	cmd.PersistentFlags().String("config", "", "config file (yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = o.v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = o.v.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(
		newFreshCmd(o),
		newContainsCmd(o),
		newAddrCmd(o),
	)
	return cmd
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	if cfg := o.v.GetString("config"); cfg != "" {
		o.v.SetConfigFile(cfg)
		if err := o.v.ReadInConfig(); err != nil {
			return err
		}
	}

	o.log.SetOutput(cmd.ErrOrStderr())
	level, err := logrus.ParseLevel(o.v.GetString("log-level"))
	if err != nil {
		return err
	}
	o.log.SetLevel(level)
	o.log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  o.v.ConfigFileUsed(),
	}).Debug("initialized")
	return nil
}
