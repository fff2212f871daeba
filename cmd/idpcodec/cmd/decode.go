package cmd

import (
	"fmt"
	"net/http"

	"github.com/ripkitten-co/idpcodec/protocol"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var (
		status    int
		errorType string
		requestID string
	)

	cmd := &cobra.Command{
		Use:   "decode <operation> [file]",
		Short: "Decode a wire response",
		Long: `Read a response body for an operation from a file or stdin. A success
status prints the canonical output; any other status is decoded as a
service error and reported as a failure.

Example:
  idpcodec decode ListUsers users.json --timestamp-format iso8601
  idpcodec decode GetUser err.json --status 400`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			body, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}

			resp := &protocol.Response{StatusCode: status, Header: http.Header{}, Body: body}
			if errorType != "" {
				resp.Header.Set(protocol.HeaderErrorType, errorType)
			}
			if requestID != "" {
				resp.Header.Set(protocol.HeaderRequestID, requestID)
			}

			out, err := a.svc.DecodeResponse(cmd.Context(), args[0], resp)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
			return err
		},
	}

	cmd.Flags().IntVar(&status, "status", http.StatusOK, "HTTP status code of the response")
	cmd.Flags().StringVar(&errorType, "error-type", "", "Value of the X-Amzn-ErrorType header")
	cmd.Flags().StringVar(&requestID, "request-id", "", "Value of the X-Amzn-RequestId header")
	return cmd
}
