package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <operation> [file]",
		Short: "Encode an operation input as a wire request",
		Long: `Read input JSON for an operation from a file or stdin and print the
request headers followed by the canonical body. Unknown members are dropped.

Example:
  echo '{"ClientId":"abc","Username":"alice"}' | idpcodec encode SignUp`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}

			req, err := a.svc.EncodeRequest(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", req.Method, req.Path)
			for _, k := range slices.Sorted(maps.Keys(req.Header)) {
				fmt.Fprintf(out, "%s: %s\n", k, req.Header.Get(k))
			}
			_, err = fmt.Fprintf(out, "\n%s\n", req.Body)
			return err
		},
	}
}
