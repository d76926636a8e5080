package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgavlin/tack/repl"
)

const version = "0.1"

const versionTemplate = `{{.Name}} {{.Version}}
Copyright (C) 2014 Vernon Jones, Bradon Kanyid
License GPLv3+: GNU GPL version 3 or later <http://gnu.org/licenses/gpl.html>.
This is free software: you are free to change and redistribute it.
There is NO WARRANTY, to the extent permitted by law.
`

func newRootCommand(logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tack",
		Short:         "An interactive interpreter for a small Lisp",
		Long:          "tack reads one line at a time from standard input, evaluates it and prints the result.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.RunTerminal(cmd.Context(), "", cmd.OutOrStdout(), logger)
		},
	}
	cmd.SetVersionTemplate(versionTemplate)
	return cmd
}

func main() {
	logger := log.New(os.Stderr, "tack: ", 0)

	if err := newRootCommand(logger).Execute(); err != nil {
		logger.Fatal(err)
	}
}
