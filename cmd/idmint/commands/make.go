package commands

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/viant/idmint"
	"github.com/viant/idmint/internal/clock"
	"github.com/viant/idmint/service/allocator"
)

func newMakeCmd(flags *globalFlags) *cobra.Command {
	var (
		timestamp string
		fromStdin bool
	)
	cmd := &cobra.Command{
		Use:   "make [content...]",
		Short: "Issue one identifier per content argument",
		Long: `Issue one identifier per content argument, or per input line with --stdin.
Identifiers are printed one per line in input order. Registries are written
back after all identifiers were issued, even when one of them failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := flags.config(cmd)
			if err != nil {
				return err
			}
			contents := args
			if fromStdin {
				if contents, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			if len(contents) == 0 {
				return fmt.Errorf("no content given")
			}
			var options []allocator.Option
			if timestamp != "" {
				when, err := clock.ParseISO(timestamp)
				if err != nil {
					return err
				}
				options = append(options, allocator.WithTimestamp(when))
			}
			ctx := cmd.Context()
			return idmint.Run(ctx, func(srv *idmint.Service) error {
				for _, content := range contents {
					id, err := srv.MakeString(ctx, content, options...)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			}, idmint.WithConfig(config))
		},
	}
	cmd.Flags().StringVarP(&timestamp, "timestamp", "t", "", "timestamp mixed into the hash (YYYY-MM-DDTHH:MM:SS[.ffffff]), defaults to now")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read content lines from standard input")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var ret []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ret = append(ret, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ret, nil
}
