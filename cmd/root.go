/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokensync.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensync/cmd/base"
	"bennypowers.dev/tokensync/cmd/mcp"
	"bennypowers.dev/tokensync/cmd/name"
	"bennypowers.dev/tokensync/cmd/palette"
	"bennypowers.dev/tokensync/cmd/resolve"
	"bennypowers.dev/tokensync/cmd/semantic"
	"bennypowers.dev/tokensync/cmd/sync"
	"bennypowers.dev/tokensync/cmd/version"
	"bennypowers.dev/tokensync/internal/logger"
	"bennypowers.dev/tokensync/tree"
)

var rootCmd = &cobra.Command{
	Use:   "tokensync",
	Short: "Turn Figma variable exports into Chakra UI theme tokens",
	Long: `tokensync converts flat Figma variable exports into nested Chakra UI
token trees: base tokens with literal values, and semantic tokens with light
and dark conditions that reference the base palette.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command. An interrupt cancels the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("root", ".", "Project root containing .config/tokensync.yaml")
	rootCmd.PersistentFlags().String("on-conflict", "", "Path conflict policy: "+strings.Join(tree.ValidPolicies(), ", "))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output")

	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("on-conflict", rootCmd.PersistentFlags().Lookup("on-conflict"))

	rootCmd.AddCommand(name.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(base.Cmd)
	rootCmd.AddCommand(semantic.Cmd)
	rootCmd.AddCommand(sync.Cmd)
	rootCmd.AddCommand(palette.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

// initConfig reads TOKENSYNC_ROOT and TOKENSYNC_ON_CONFLICT from the environment.
func initConfig() {
	viper.SetEnvPrefix("TOKENSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
