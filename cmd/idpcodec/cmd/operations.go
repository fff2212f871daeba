package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ripkitten-co/idpcodec/internal/codecs"
	"github.com/spf13/cobra"
)

type operationInfo struct {
	Name          string   `json:"name"`
	Input         string   `json:"input"`
	Output        string   `json:"output"`
	InputMembers  []string `json:"inputMembers"`
	OutputMembers []string `json:"outputMembers"`
}

func newOperationsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List supported operations",
		Long: `List every supported operation with its input and output shapes.

Example:
  idpcodec operations --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			infos := make([]operationInfo, 0, len(a.svc.Operations()))
			for _, name := range a.svc.Operations() {
				op, err := a.svc.Operation(name)
				if err != nil {
					return err
				}
				infos = append(infos, operationInfo{
					Name:          name,
					Input:         op.Input().Name(),
					Output:        op.Output().Name(),
					InputMembers:  op.Input().WireNames(),
					OutputMembers: op.Output().WireNames(),
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := codecs.NewJSONIter().Marshal(infos)
				if err != nil {
					return fmt.Errorf("encode operations: %w", err)
				}
				_, err = fmt.Fprintf(out, "%s\n", data)
				return err
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OPERATION\tINPUT\tOUTPUT\tINPUT MEMBERS")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Input, info.Output, strings.Join(info.InputMembers, ","))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
