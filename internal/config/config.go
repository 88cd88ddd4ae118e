package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const fileBase = ".concord-cli"

// Init reads the config file and CONCORD_* environment variables. A missing
// config file is fine; flags and env cover everything.
func Init(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(fileBase)
	}

	viper.SetEnvPrefix("concord")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// SaveProfile persists the connection profile currently set in viper
// (ip, username, password, port) so later invocations can omit the flags.
func SaveProfile() error {
	if err := viper.WriteConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.SafeWriteConfig()
		}
		home, herr := os.UserHomeDir()
		if herr != nil {
			return herr
		}
		return viper.WriteConfigAs(filepath.Join(home, fileBase+".yaml"))
	}
	return nil
}
