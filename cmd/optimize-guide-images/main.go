package main

import (
	"log"

	"guide-images/internal/compression"

	"github.com/spf13/cobra"
)

func main() {
	log.SetPrefix(compression.ProgressPrefix + " ")

	if err := newRootCmd().Execute(); err != nil {
		log.SetPrefix("")
		log.SetFlags(0)
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "optimize-guide-images",
		Short:         "Convert the guide screenshots step1..step5 from PNG to WebP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
