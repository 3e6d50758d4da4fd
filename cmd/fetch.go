package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/sanity"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [query]",
	Short: "Run one content query and print its result",
	Long: `fetch runs a named query against the configured project and prints the
raw JSON result. Use it to check what the CMS returns for a section.

Run "portfolio queries" for the list of names.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, ok := sanity.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown query %q (known: %s)", args[0], strings.Join(sanity.Names(), ", "))
		}

		var raw json.RawMessage
		if err := newClient().Fetch(cmd.Context(), q, &raw); err != nil {
			return err
		}
		if raw == nil {
			raw = json.RawMessage("null")
		}

		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "  "); err != nil {
			return fmt.Errorf("formatting result: %w", err)
		}
		out.WriteByte('\n')
		_, err := cmd.OutOrStdout().Write(out.Bytes())
		return err
	},
}

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "List the content queries the site issues",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tKIND\tENDPOINT")
		for _, name := range sanity.Names() {
			q, _ := sanity.Lookup(name)
			fmt.Fprintf(w, "%s\t%s\t%s\n", q.Name, q.Kind, client.Endpoint(q))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd, queriesCmd)
}
