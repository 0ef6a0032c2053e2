package cmd

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/barbershop/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "barbershop",
	Short: "Sleeping-barber shop simulation",
	Long: `Barbershop simulates the sleeping-barber problem: a fixed team of barbers
serves clients who arrive at random intervals and wait in a room with a
limited number of chairs. Clients who find every chair taken leave.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/barbershop/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Values from .env become environment variables; variables already set win
	_ = godotenv.Load()

	// Set defaults first so they're available even without a config file
	config.SetDefaults(viper.GetViper())

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/barbershop")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("BARBERSHOP")
	// Replace dots with underscores for nested keys in env vars
	// e.g., BARBERSHOP_SHOP_BARBERS for shop.barbers
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
