package main

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/ttacon/chalk"

	"github.com/adrrf/qubindr/api"
	"github.com/adrrf/qubindr/binder"
	"github.com/adrrf/qubindr/registry"
)

var (
	green func(string) string = chalk.Green.NewStyle().WithTextStyle(chalk.Bold).Style
	red   func(string) string = chalk.Red.NewStyle().WithTextStyle(chalk.Bold).Style
)

func loadConfig() error {
	viper.SetDefault("host", "127.0.0.1")
	viper.SetDefault("port", 7812)
	viper.SetDefault("ledger_size", binder.DefaultLedgerSize)

	viper.SetEnvPrefix("QUBINDR")
	viper.AutomaticEnv()

	viper.SetConfigName("qubindr")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

func main() {
	if err := loadConfig(); err != nil {
		log.Fatal(red(fmt.Sprintf("Error loading config: %v", err)))
	}

	reg := registry.Seed()
	b := binder.New(reg, viper.GetInt("ledger_size"))

	log.Println(green(fmt.Sprintf(
		"qubindr: %d QPUs registered, %d available",
		reg.Len(), len(reg.Available()),
	)))

	httpApi := binder.HttpApiBinder{
		HttpApi: api.HttpApi[binder.Binder]{
			Address: viper.GetString("host"),
			Port:    viper.GetInt("port"),
			Ref:     b,
		},
	}

	if err := httpApi.StartServer(); err != nil {
		log.Fatal(red(fmt.Sprintf("Server stopped: %v", err)))
	}
}
