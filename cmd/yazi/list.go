package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kpbaks/yazi/pkg/filesystem"
	"github.com/kpbaks/yazi/pkg/filesystem/cache"
	"github.com/kpbaks/yazi/pkg/listing"
)

// listConfiguration stores configuration for the list command.
var listConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// all includes hidden entries.
	all bool
	// long enables detailed per-entry output.
	long bool
	// follow resolves symbolic link targets.
	follow bool
	// ignorePatterns are additional names to omit.
	ignorePatterns []string
	// noCache disables the persisted characteristics cache.
	noCache bool
}

// entryMarker computes the single-character type marker for an entry.
func entryMarker(characteristics filesystem.Characteristics) string {
	switch {
	case characteristics.IsDummy():
		return "?"
	case characteristics.IsOrphan():
		return "!"
	case characteristics.IsSymbolicLink():
		return "l"
	case characteristics.IsDirectory():
		return "d"
	default:
		return "-"
	}
}

// entryColor computes the display color for an entry.
func entryColor(characteristics filesystem.Characteristics) *color.Color {
	switch {
	case characteristics.IsOrphan():
		return color.New(color.FgRed)
	case characteristics.IsSymbolicLink():
		return color.New(color.FgCyan)
	case characteristics.IsDirectory():
		return color.New(color.FgBlue, color.Bold)
	case characteristics.IsHidden():
		return color.New(color.Faint)
	case characteristics.IsExecutable():
		return color.New(color.FgGreen)
	default:
		return color.New()
	}
}

// printEntry prints a single listing entry.
func printEntry(entry listing.Entry, long bool) {
	painter := entryColor(entry.Characteristics)
	if !long {
		painter.Println(entry.Name)
		return
	}

	// Compute the size column. Sizes aren't meaningful for directories or
	// placeholder records.
	size := "-"
	if !entry.Characteristics.IsDirectory() && !entry.Characteristics.IsDummy() {
		size = humanize.Bytes(entry.Characteristics.Size)
	}

	// Compute the modification time column.
	modified := "-"
	if !entry.Characteristics.ModificationTime.IsZero() {
		modified = humanize.Time(entry.Characteristics.ModificationTime)
	}

	fmt.Printf("%s %10s %15s ", entryMarker(entry.Characteristics), size, modified)
	painter.Println(entry.Name)
}

// listMain is the entry point for the list command.
func listMain(_ *cobra.Command, arguments []string) error {
	// Determine the listing root.
	root := "."
	if len(arguments) == 1 {
		root = arguments[0]
	} else if len(arguments) > 1 {
		return fmt.Errorf("expected at most one path argument")
	}

	// Disable color for non-terminal output.
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	// Merge configured defaults with command line flags.
	includeHidden := globalConfiguration.ShowHidden || listConfiguration.all
	follow := globalConfiguration.FollowSymlinks || listConfiguration.follow
	patterns := append([]string{}, globalConfiguration.IgnorePatterns...)
	patterns = append(patterns, listConfiguration.ignorePatterns...)

	// Perform the listing.
	entries, err := listing.List(context.Background(), root, &listing.Options{
		IncludeHidden:  includeHidden,
		FollowSymlinks: follow,
		IgnorePatterns: patterns,
		Logger:         globalLogger,
	})
	if err != nil {
		return err
	}

	// Refresh the persisted characteristics cache, unless disabled. The
	// cache isn't needed for display, but keeping it warm lets subsequent
	// invocations and other consumers skip re-derivation for unchanged
	// entries.
	if !listConfiguration.noCache {
		if cachePath, err := globalConfiguration.EffectiveCachePath(); err == nil {
			store, err := cache.Load(cachePath, globalConfiguration.CacheCapacity, globalLogger)
			if err == nil {
				for _, entry := range entries {
					if _, ok := store.Lookup(entry.Path, entry.Characteristics); !ok {
						store.Store(entry.Path, entry.Characteristics)
					}
				}
				if err := store.Save(cachePath); err != nil {
					globalLogger.Debug().Err(err).Msg("unable to persist cache")
				}
			}
		}
	}

	// Print entries.
	for _, entry := range entries {
		printEntry(entry, listConfiguration.long)
	}

	// Success.
	return nil
}

// listCommand is the list command.
var listCommand = &cobra.Command{
	Use:          "list [path]",
	Short:        "List directory entries with their characteristics",
	RunE:         listMain,
	SilenceUsage: true,
}

func init() {
	// Grab a handle for the command line flags.
	flags := listCommand.Flags()
	configureFlags(flags)

	// Manually add a help flag to override the default message.
	flags.BoolVarP(&listConfiguration.help, "help", "h", false, "Show help information")

	// Wire up list flags.
	flags.BoolVarP(&listConfiguration.all, "all", "a", false, "Include hidden entries")
	flags.BoolVarP(&listConfiguration.long, "long", "l", false, "Show detailed entry information")
	flags.BoolVarP(&listConfiguration.follow, "follow", "L", false, "Resolve symbolic link targets")
	flags.StringSliceVar(&listConfiguration.ignorePatterns, "ignore", nil, "Omit entries matching the pattern (repeatable)")
	flags.BoolVar(&listConfiguration.noCache, "no-cache", false, "Disable the persisted characteristics cache")
}
