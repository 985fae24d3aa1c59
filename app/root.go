// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "starfield",
	Short: "starfield is the backend for a personal blog and portfolio site",
	Long: `starfield is the backend for a personal blog and portfolio site.
It serves posts, notes, comments, a guestbook, friend links, a music
playlist and visit statistics through a JSON REST API.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
