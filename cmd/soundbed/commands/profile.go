package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/soundbed/soundbed/pkg/cli"
)

var (
	profilePolicyFile string
	profileBitrate    int
	profileFFmpeg     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named mixing profiles",
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or update a mixing profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := globalConfig.AddProfile(args[0], &cli.Profile{
			PolicyFile:  profilePolicyFile,
			BitrateKbps: profileBitrate,
			FFmpeg:      profileFFmpeg,
		})
		if err != nil {
			return err
		}
		cli.PrintSuccess("profile %q saved", args[0])
		return nil
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the current profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := globalConfig.UseProfile(args[0]); err != nil {
			return err
		}
		cli.PrintSuccess("using profile %q", args[0])
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := globalConfig.DeleteProfile(args[0]); err != nil {
			return err
		}
		cli.PrintSuccess("profile %q deleted", args[0])
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := globalConfig.ListProfiles()
		sort.Strings(names)
		for _, name := range names {
			marker := "  "
			if name == globalConfig.CurrentProfile {
				marker = "* "
			}
			fmt.Println(marker + name)
		}
		return nil
	},
}

func init() {
	profileAddCmd.Flags().StringVar(&profilePolicyFile, "policy", "", "policy override file (YAML or JSON)")
	profileAddCmd.Flags().IntVar(&profileBitrate, "bitrate", 0, "audio bitrate override in kbps")
	profileAddCmd.Flags().StringVar(&profileFFmpeg, "ffmpeg", "", "ffmpeg binary override")

	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileListCmd)
}
