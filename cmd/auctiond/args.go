package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func ParseArgs() Args {
	// server config
	pflag.String("listen-addr", "0.0.0.0:8080", "")
	pflag.String("allowed-origins", "*", "")

	// storage config: empty data-dir keeps everything in memory
	pflag.String("data-dir", "", "")

	// audit config: empty nats-url logs events instead of publishing
	pflag.String("nats-url", "", "")

	// settlement config
	pflag.String("escrow-account", "escrow", "")

	// logging config
	pflag.String("log-level", "info", "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("AUCTIOND")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return Args{
		ListenAddr:     viper.GetString("listen-addr"),
		AllowedOrigins: viper.GetString("allowed-origins"),
		DataDir:        viper.GetString("data-dir"),
		NATSURL:        viper.GetString("nats-url"),
		EscrowAccount:  viper.GetString("escrow-account"),
		LogLevel:       viper.GetString("log-level"),
	}
}

type Args struct {
	ListenAddr     string
	AllowedOrigins string
	DataDir        string
	NATSURL        string
	EscrowAccount  string
	LogLevel       string
}

func (args Args) Validate() bool {
	return args.ListenAddr != "" && args.EscrowAccount != ""
}
