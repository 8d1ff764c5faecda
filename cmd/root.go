package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/dWrite/cmd/util"
	"github.com/ValentinKolb/dWrite/cmd/write"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "dwrite",
		Short: "batched bulk writer for table stores",
		Long: fmt.Sprintf(`dWrite (v%s)

A client-side write buffer for table stores written in Go. It batches
individual put/delete operations into bulk write requests, deduplicates
redundant writes to the same row and retries whatever the backend
declines to process.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dWrite",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dWrite v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(write.WriteCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "json", util.WrapString("serializer to use (json, gob, binary)"))
	key = "transport"
	RootCmd.PersistentFlags().String(key, "http", util.WrapString("transport to use (http, tcp, unix)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
