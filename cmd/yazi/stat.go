package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kpbaks/yazi/pkg/filesystem"
)

// statConfiguration stores configuration for the stat command.
var statConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

// formatTime renders an optional timestamp.
func formatTime(value time.Time) string {
	if value.IsZero() {
		return "unavailable"
	}
	return fmt.Sprintf("%s (%s)", value.Format(time.RFC3339), humanize.Time(value))
}

// printCharacteristics prints a characteristics record.
func printCharacteristics(characteristics filesystem.Characteristics) {
	fmt.Println("Kind:", characteristics.Kind)
	fmt.Printf("Size: %d (%s)\n", characteristics.Size, humanize.Bytes(characteristics.Size))
	fmt.Println("Modified:", formatTime(characteristics.ModificationTime))
	fmt.Println("Accessed:", formatTime(characteristics.AccessTime))
	fmt.Println("Created:", formatTime(characteristics.BirthTime))
	if !characteristics.ChangeTime.IsZero() {
		fmt.Println("Changed:", formatTime(characteristics.ChangeTime))
	}
	if characteristics.Mode != 0 {
		fmt.Printf("Mode: %#o\n", uint32(characteristics.Mode))
		fmt.Printf("Device: %d Owner: %d Group: %d Links: %d\n",
			characteristics.DeviceID,
			characteristics.UserID,
			characteristics.GroupID,
			characteristics.LinkCount,
		)
	}
}

// statMain is the entry point for the stat command.
func statMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return fmt.Errorf("expected exactly one path argument")
	}
	path := arguments[0]

	// Query metadata without following a terminal symbolic link.
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("unable to query metadata: %w", err)
	}

	// Print the entry's own characteristics.
	characteristics := filesystem.NewCharacteristicsNoFollow(path, info)
	fmt.Println("Entry:")
	printCharacteristics(characteristics)

	// For symbolic links, additionally print the resolved view.
	if characteristics.IsSymbolicLink() {
		resolved := filesystem.NewCharacteristics(context.Background(), path, info)
		fmt.Println()
		if resolved.IsOrphan() {
			fmt.Println("Target: unresolvable (orphaned link)")
		} else {
			fmt.Println("Target:")
			printCharacteristics(resolved)
		}
	}

	// Success.
	return nil
}

// statCommand is the stat command.
var statCommand = &cobra.Command{
	Use:          "stat <path>",
	Short:        "Show the characteristics of a single entry",
	RunE:         statMain,
	SilenceUsage: true,
}

func init() {
	// Grab a handle for the command line flags.
	flags := statCommand.Flags()
	configureFlags(flags)

	// Manually add a help flag to override the default message.
	flags.BoolVarP(&statConfiguration.help, "help", "h", false, "Show help information")
}
