// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ava-labs/avalanche-wallet-core/utils/logging"
)

// cliConfig is read through viper so every flag doubles as a TXCTL_*
// environment variable.
type cliConfig struct {
	v *viper.Viper
}

func newCLIConfig(flags *pflag.FlagSet) (*cliConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("TXCTL")
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return &cliConfig{v: v}, nil
}

func (c *cliConfig) NetworkID() (uint32, error) {
	return cast.ToUint32E(c.v.Get("network-id"))
}

func (c *cliConfig) HRP() string { return c.v.GetString("hrp") }

func (c *cliConfig) KeystorePath() string { return c.v.GetString("keystore") }

// Logger builds a Logger whose console encoding follows
// --log-display-highlight; the library itself emits no color codes, only
// this CLI shell does.
func (c *cliConfig) Logger() (*logging.Logger, error) {
	highlight, err := logging.ToHighlight(c.v.GetString("log-display-highlight"), os.Stdout.Fd())
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	if highlight == logging.Plain {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(os.Stderr), zap.DebugLevel)
	return logging.NewLogger(zap.New(core)), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "txctl",
		Short:         "Build and sign Avalanche transactions offline",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().Uint32("network-id", 1, "network id transactions are scoped to")
	root.PersistentFlags().String("hrp", "avax", "bech32 human-readable part for addresses")
	root.PersistentFlags().String("keystore", "keystore.json", "path to the local keystore file")
	root.PersistentFlags().String("log-display-highlight", "auto", "log color mode: plain, colors, or auto")

	root.AddCommand(newKeyCmd())
	root.AddCommand(newXChainCmd())
	return root
}
