package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "folderclip",
	Short: "Group file references into persistent folders and build multi-file clipboard copies",
	Long: `folderclip keeps named folders of file references in a shared on-disk
document, so every running instance sees the same folders. It aggregates
copied file fragments into a single clipboard payload with dedup-by-key,
and its watch process reconciles workspace renames and deletes against
the stored references.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/folderclip/config.toml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "folderclip")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	// Set defaults
	dataDir := defaultDataDir()
	viper.SetDefault("store.path", filepath.Join(dataDir, "folders.json"))
	viper.SetDefault("store.backup_path", "")
	viper.SetDefault("store.legacy_path", filepath.Join(dataDir, "legacy.json"))
	viper.SetDefault("clip.state_path", filepath.Join(dataDir, "clipboard.json"))
	viper.SetDefault("sync.debounce_ms", 300)
	viper.SetDefault("sync.suppress_ms", 500)
	viper.SetDefault("reconcile.debounce_ms", 300)
	viper.SetDefault("reconcile.rename_window_ms", 400)
	viper.SetDefault("folder.max_files", 500)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "folderclip")
}
