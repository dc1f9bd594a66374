// Package main provides the soundbed CLI tool.
//
// Usage:
//
//	soundbed [flags] <command> [args]
//
// Commands:
//
//	compose  - Mix narration, music and ambient beds into a video's audio track
//	measure  - Measure loudness and true peak of a media file
//	profile  - Manage named mixing profiles
//	version  - Print version information
//
// Configuration:
//
//	The CLI stores configuration in ~/.soundbed/
//	Use 'soundbed profile' commands to manage mixing profiles.
package main

import (
	"os"

	"github.com/soundbed/soundbed/cmd/soundbed/commands"
	"github.com/soundbed/soundbed/pkg/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
