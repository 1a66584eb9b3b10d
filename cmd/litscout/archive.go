// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litscout/internal/store"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "List and export archived search results",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived result sets, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.NewStore(archivePath())
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.ListResultSets(cmd.Context())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(os.Stderr, "archive is empty")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tKEY\tGENE\tTERMS\tHITS\tCREATED")
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				e.ID, e.Key, e.Gene, e.SearchTerms, e.HitCountDisplay, e.Created)
		}
		return w.Flush()
	},
}

var archiveExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export one archived result set as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid archive id %q", args[0])
		}

		s, err := store.NewStore(archivePath())
		if err != nil {
			return err
		}
		defer s.Close()

		rs, err := s.ExportResultSet(cmd.Context(), id)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(rs)
		}

		data, err := yaml.Marshal(rs)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Result set written to", out)
		return nil
	},
}

func init() {
	archiveExportCmd.Flags().String("out", "", "write the export to a file instead of stdout")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveExportCmd)
	rootCmd.AddCommand(archiveCmd)
}
