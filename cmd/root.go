package cmd

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:     "gocodon",
	Short:   "genetic code translation utilities for nucleotide sequences",
	Long:    `genetic code translation utilities for nucleotide sequences`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setUpLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", "warning", "logging verbosity (debug, info, warning, error)")
}

func setUpLogging() error {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetBackend(backend)
	logging.SetFormatter(logging.MustStringFormatter(`%{level}: %{message}`))

	level, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	logging.SetLevel(level, "fasta")
	logging.SetLevel(level, "cmd")

	return nil
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
