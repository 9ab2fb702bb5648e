package cmd

import (
	"strings"

	"github.com/machinefabric/managers-go"
	"github.com/machinefabric/managers-go/config"
	"github.com/machinefabric/managers-go/driver"
	"github.com/machinefabric/managers-go/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "managers",
	Short: "Singleton manager catalog",
	Long: `managers demonstrates four singleton variants and how each behaves when
its resource cannot be acquired. Without a subcommand it runs the driver:
Manager4 is requested twice and its resource printed whenever it exists.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDriver,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/managers/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MANAGERS")
	// MANAGERS_FACTORY_READY_AFTER for factory.ready_after
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runDriver(cmd *cobra.Command, _ []string) error {
	opts, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := managers.ResetDefault(opts...); err != nil {
		return err
	}
	defer func() { _ = managers.ResetDefault() }()

	return driver.Run(cmd.OutOrStdout(), managers.Default())
}

// setup loads the configuration, installs the global logger and returns the
// context options the configuration asks for.
func setup() ([]managers.Option, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.InitializeGlobalLogger(cfg.Logger)
	if err != nil {
		return nil, err
	}
	return contextOptions(cfg, log)
}
