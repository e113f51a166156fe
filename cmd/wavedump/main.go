package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wavedump"
)

var rootCmd = &cobra.Command{
	Use:   "wavedump",
	Short: "Signal simulation waveform dumper",
	Long:  `wavedump runs a signal-level simulation and records value changes as a VCD trace.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wavedump version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wavedump", wavedump.Version)
	},
}

func main() {
	rootCmd.Version = wavedump.Version
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
