package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_palindrome"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

func newCheckCommand(opts *RootOptions) *cobra.Command {
	var (
		local   bool
		options = domain.DefaultOptions()
	)

	cmd := &cobra.Command{
		Use:   "check <text>",
		Short: "Check whether a text is a palindrome",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return domain.ErrInvalidInput
			}

			var res domain.CheckResult
			if local {
				checker, err := palindrome.New(palindrome.WithoutLogging())
				if err != nil {
					return err
				}
				res = checker.Check(text, options)
			} else {
				var err error
				res, err = opts.client().Check(text, options)
				if err != nil {
					return err
				}
			}
			return printer{format: opts.Format, w: cmd.OutOrStdout()}.checkResult(res)
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "check locally without contacting the server")
	cmd.Flags().BoolVar(&options.IgnoreSpaces, "ignore-spaces", true, "ignore space characters")
	cmd.Flags().BoolVar(&options.IgnoreCase, "ignore-case", true, "ignore letter case")
	cmd.Flags().BoolVar(&options.IgnorePunctuation, "ignore-punctuation", true, "ignore punctuation and symbols")
	return cmd
}

func newQuickCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "quick <text>",
		Short: "Check a text with the default options",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().QuickCheck(strings.Join(args, " "))
			if err != nil {
				return err
			}
			p := printer{format: opts.Format, w: cmd.OutOrStdout()}
			if opts.Format == "json" {
				return p.json(res)
			}
			_, err = fmt.Fprintln(p.w, res.Message)
			return err
		},
	}
}

func newListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored palindromes, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := opts.client().List()
			if err != nil {
				return err
			}
			return printer{format: opts.Format, w: cmd.OutOrStdout()}.records(recs)
		},
	}
}

func newGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a stored palindrome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			rec, err := opts.client().Get(id)
			if err != nil {
				return err
			}
			return printer{format: opts.Format, w: cmd.OutOrStdout()}.record(rec)
		},
	}
}

func newCategoryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "category <word|phrase|number>",
		Short: "List stored palindromes in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := opts.client().ByCategory(args[0])
			if err != nil {
				return err
			}
			return printer{format: opts.Format, w: cmd.OutOrStdout()}.records(recs)
		},
	}
}

func newAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Store a palindrome",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := opts.client().Add(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printer{format: opts.Format, w: cmd.OutOrStdout()}.record(rec)
		},
	}
}

func newDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored palindrome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.client().Delete(id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d\n", id)
			return err
		},
	}
}

func newStatsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := opts.client().Statistics()
			if err != nil {
				return err
			}
			return printer{format: opts.Format, w: cmd.OutOrStdout()}.statistics(stats)
		},
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}
