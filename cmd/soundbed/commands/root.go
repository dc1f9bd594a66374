package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/soundbed/soundbed/pkg/cli"
)

var (
	// Global flags
	cfgFile     string
	profileName string
	outputJSON  bool
	verbose     bool

	// Global configuration
	globalConfig *cli.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "soundbed",
	Short: "Audio mixing and mastering for short-form video",
	Long: `soundbed - mix and master the audio track of a short-form video.

Up to three sources feed the mix: narration, a music bed and an ambient bed.
Each is conditioned for its role, the beds are ducked under the narration,
and the mastered result is muxed back against the visual stream with the
video codec untouched. Every source is optional; the pipeline degrades
gracefully through all presence combinations.

Examples:
  # Full mix
  soundbed compose -i video.mp4 --narration voice.wav --music bed.mp3 -o final.mp4

  # Music only, visual stream copied as-is
  soundbed compose -i video.mp4 --music bed.mp3 -o final.mp4

  # Inspect a file's loudness
  soundbed measure final.mp4
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.soundbed/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "mixing profile to use")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output reports as JSON (for piping)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	globalConfig, err = cli.LoadConfigWithPath(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

func initLogger() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// getProfile returns the active mixing profile, or nil for defaults.
func getProfile() (*cli.Profile, error) {
	if globalConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return globalConfig.ResolveProfile(profileName)
}
