package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpbaks/yazi/pkg/yazi"
)

// versionMain is the entry point for the version command.
func versionMain(_ *cobra.Command, _ []string) error {
	fmt.Println(yazi.Version)
	return nil
}

// versionCommand is the version command.
var versionCommand = &cobra.Command{
	Use:          "version",
	Short:        "Show version information",
	RunE:         versionMain,
	SilenceUsage: true,
}
