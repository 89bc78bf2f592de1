package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/git-hulk/requestkit"
	"github.com/git-hulk/requestkit/pkg/serialize"
)

func newPrepareCmd(opts *rootOptions) *cobra.Command {
	var (
		method    string
		headers   []string
		body      string
		colon     bool
		requestID bool
	)
	cmd := &cobra.Command{
		Use:   "prepare <url>",
		Short: "Resolve and encode a request without sending it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := requestkit.RawRequest{Method: method, URL: args[0], Body: body}
			for _, h := range headers {
				name, value, ok := strings.Cut(h, ":")
				if !ok {
					return fmt.Errorf("invalid header %q, want 'Name: value'", h)
				}
				raw.Headers = append(raw.Headers, requestkit.Header{
					Name:  strings.TrimSpace(name),
					Value: strings.TrimSpace(value),
				})
			}

			s, err := opts.substitutor()
			if err != nil {
				return err
			}
			clientOptions := []requestkit.ClientOption{requestkit.WithSubstitutor(s)}
			if requestID {
				clientOptions = append(clientOptions, requestkit.WithRequestID())
			}
			req, err := requestkit.NewClient(clientOptions...).Prepare(cmd.Context(), raw)
			if err != nil {
				return err
			}

			prepared := serialize.NewStructure().
				Set("method", serialize.String(req.Method)).
				Set("url", serialize.String(req.URL))
			headerDoc := serialize.NewStructure()
			for _, h := range raw.Headers {
				headerDoc.Set(h.Name, serialize.String(req.Header.Get(h.Name)))
			}
			if id := req.Header.Get(requestkit.RequestIDHeader); id != "" {
				headerDoc.Set(requestkit.RequestIDHeader, serialize.String(id))
			}
			prepared.Set("headers", headerDoc)
			if b, ok := req.Body.(string); ok {
				prepared.Set("body", serialize.String(b))
			}
			fmt.Fprintln(cmd.OutOrStdout(), serialize.Serialize(prepared, colon))
			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "X", "GET", "Request method")
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "Request header 'Name: value' (repeatable)")
	cmd.Flags().StringVarP(&body, "data", "d", "", "Request body")
	cmd.Flags().BoolVar(&colon, "colon", false, "Separate entries with ':' instead of ','")
	cmd.Flags().BoolVar(&requestID, "request-id", false, "Stamp an X-Request-Id header")
	return cmd
}
