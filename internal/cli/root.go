// Package cli implements the palindromectl command tree.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_palindrome/internal/client"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Server  string
	Timeout time.Duration
	Format  string // "json" | "text"

	// NewClient builds the API client; replaced in tests.
	NewClient func(baseURL string, opts ...client.Option) *client.Client
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for palindromectl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{NewClient: client.New})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palindromectl",
		Short: "Check and manage palindromes",
		Long:  "A command-line client for the palindrome server. The check command can also run locally.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", "http://localhost:8080", "palindrome server base URL")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", client.DefaultTimeout, "request timeout")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newQuickCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newGetCommand(opts))
	cmd.AddCommand(newCategoryCommand(opts))
	cmd.AddCommand(newAddCommand(opts))
	cmd.AddCommand(newDeleteCommand(opts))
	cmd.AddCommand(newStatsCommand(opts))

	return cmd
}

func (o *RootOptions) client() *client.Client {
	return o.NewClient(o.Server, client.WithTimeout(o.Timeout))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
