package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/studyplan/internal/cmd/config"
	appconfig "github.com/Iron-Ham/studyplan/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "studyplan",
	Short: "Terminal client for the study plan service",
	Long: `studyplan uploads your course material to the study plan service and
shows the generated plan as a chat, a calendar and a day-by-day agenda.

Run 'studyplan start' for the interactive UI or 'studyplan generate' for a
scripted run that prints the plan to stdout.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/studyplan/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	config.Register(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	appconfig.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(appconfig.ConfigDir())
		viper.AddConfigPath("$HOME/.config/" + appconfig.AppName)
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("STUDYPLAN")
	// e.g., STUDYPLAN_SERVER_BASE_URL for server.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
