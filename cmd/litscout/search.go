// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litscout/internal/epmc"
	"github.com/pdiddy/litscout/internal/harvest"
	"github.com/pdiddy/litscout/internal/mapping"
	"github.com/pdiddy/litscout/internal/ontology"
	"github.com/pdiddy/litscout/internal/pipeline"
	"github.com/pdiddy/litscout/internal/store"
	"github.com/pdiddy/litscout/internal/synonym"
	"github.com/pdiddy/litscout/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the literature for gene/disease/tissue co-occurrences",
	Long: `Search expands each input gene identifier into its synonyms and textual
variants, builds Europe PMC queries combining them with the disease, tissue
and keyword terms, and collects the matching publications into a YAML report.

Input rows come from a YAML file (--input) or a single --gene flag. Genes in
systematically named families (ADAMTS4, ADAMTS5, ...) additionally get a
family-root follow-up search that catches indirect mentions in numbered
lists such as "ADAMTS-4, -5 and -9".`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("input", "", "YAML file with input gene rows")
	searchCmd.Flags().String("gene", "", "single gene identifier to search for")
	searchCmd.Flags().String("id-type", pipeline.DefaultIDType, "identifier mapping field (gene_exact, accession, ...)")
	searchCmd.Flags().String("taxon", pipeline.DefaultTaxon, "NCBI taxonomy id of the organism")
	searchCmd.Flags().String("disease", "", "disease term expanded through the disease ontology")
	searchCmd.Flags().String("tissue", "", "tissue/organ term expanded through the anatomy ontology")
	searchCmd.Flags().Bool("tissue-descendants", false, "also search descendants of the matched anatomy terms")
	searchCmd.Flags().String("keywords", "", "comma-separated keywords required to co-occur")
	searchCmd.Flags().Bool("expand-keywords", false, "expand keywords with ontology synonyms")
	searchCmd.Flags().StringArray("field", nil, "engine field setting as NAME:value, repeatable (e.g. OPEN_ACCESS:y)")
	searchCmd.Flags().Int("workers", 4, "concurrent searches")
	searchCmd.Flags().String("out", "results.yaml", "output report file")
	searchCmd.Flags().Bool("archive", false, "also save the results to the archive database")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := searchConfig(cmd)
	if err != nil {
		return err
	}

	rows, err := inputRows(cmd)
	if err != nil {
		return err
	}

	userAgent := viper.GetString("http.user_agent")
	if userAgent == "" {
		userAgent = "litscout/" + version
	}
	if email, ok := loadedSecrets["contact-email"]; ok {
		userAgent += " (" + email + ")"
	}

	timeout := viper.GetDuration("http.timeout")
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}

	requestDelay := viper.GetDuration("ontology.request_delay")
	if requestDelay == 0 {
		requestDelay = 100 * time.Millisecond
	}

	ols := ontology.NewClient(httpClient, requestDelay, userAgent, logger)
	ols.SetSearchRows(viper.GetInt("ontology.search_rows"))
	uniprot := mapping.NewClient(httpClient, userAgent, logger)
	resolver := synonym.NewResolver(ols, uniprot, cfg.Workers, logger)

	epmcDelay := viper.GetDuration("epmc.request_delay")
	if epmcDelay == 0 {
		epmcDelay = 100 * time.Millisecond
	}
	epmcClient := epmc.NewClient(httpClient, epmcDelay, userAgent, logger)
	harvester := harvest.NewHarvester(epmcClient, cfg.Workers, logger)

	p := pipeline.New(resolver, harvester, cfg, logger)
	outcomes, runErr := p.Run(cmd.Context(), rows)
	if outcomes == nil {
		return runErr
	}

	outPath, _ := cmd.Flags().GetString("out")
	if err := pipeline.WriteResultFile(outPath, outcomes); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Results written to", outPath)

	if doArchive, _ := cmd.Flags().GetBool("archive"); doArchive {
		if err := archiveOutcomes(cmd, outcomes); err != nil {
			return err
		}
	}

	// A partial failure still produced a report; surface it after writing.
	return runErr
}

// searchConfig merges the config file with the command-line flags; flags win.
func searchConfig(cmd *cobra.Command) (types.SearchConfig, error) {
	cfg := types.SearchConfig{
		Disease:           viper.GetString("search.disease"),
		Tissue:            viper.GetString("search.tissue"),
		Keywords:          viper.GetStringSlice("search.keywords"),
		ExpandKeywords:    viper.GetBool("search.expand_keywords"),
		TissueDescendants: viper.GetBool("search.tissue_descendants"),
		Workers:           viper.GetInt("search.workers"),
	}
	if err := viper.UnmarshalKey("search.other_fields", &cfg.OtherFields); err != nil {
		return cfg, fmt.Errorf("reading search config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("disease") {
		cfg.Disease, _ = flags.GetString("disease")
	}
	if flags.Changed("tissue") {
		cfg.Tissue, _ = flags.GetString("tissue")
	}
	if flags.Changed("tissue-descendants") {
		cfg.TissueDescendants, _ = flags.GetBool("tissue-descendants")
	}
	if flags.Changed("expand-keywords") {
		cfg.ExpandKeywords, _ = flags.GetBool("expand-keywords")
	}
	if flags.Changed("keywords") {
		raw, _ := flags.GetString("keywords")
		cfg.Keywords = nil
		for _, kwd := range strings.Split(raw, ",") {
			if kwd = strings.TrimSpace(kwd); kwd != "" {
				cfg.Keywords = append(cfg.Keywords, kwd)
			}
		}
	}
	if flags.Changed("field") {
		settings, _ := flags.GetStringArray("field")
		cfg.OtherFields = nil
		for _, s := range settings {
			name, value, ok := strings.Cut(s, ":")
			if !ok || name == "" || value == "" {
				return cfg, fmt.Errorf("invalid field setting %q, want NAME:value", s)
			}
			cfg.OtherFields = append(cfg.OtherFields, types.FieldSetting{Name: name, Value: value})
		}
	}
	if flags.Changed("workers") || cfg.Workers == 0 {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	return cfg, nil
}

// inputRows loads the row file, or builds a single row from the --gene flag.
func inputRows(cmd *cobra.Command) ([]types.GeneRow, error) {
	input, _ := cmd.Flags().GetString("input")
	gene, _ := cmd.Flags().GetString("gene")

	switch {
	case input != "" && gene != "":
		return nil, fmt.Errorf("--input and --gene are mutually exclusive")
	case input != "":
		return pipeline.LoadRows(input, logger)
	case gene != "":
		idType, _ := cmd.Flags().GetString("id-type")
		taxon, _ := cmd.Flags().GetString("taxon")
		rows := []types.GeneRow{{Identifier: gene, IDType: idType, TaxonID: taxon}}
		return pipeline.AssignKeys(rows), nil
	default:
		return nil, fmt.Errorf("either --input or --gene is required")
	}
}

// archiveOutcomes saves every successful result set to the archive database.
func archiveOutcomes(cmd *cobra.Command, outcomes []pipeline.Outcome) error {
	s, err := store.NewStore(archivePath())
	if err != nil {
		return err
	}
	defer s.Close()

	for _, o := range outcomes {
		if o.Result == nil {
			continue
		}
		id, err := s.SaveResultSet(cmd.Context(), *o.Result)
		if err != nil {
			return fmt.Errorf("archiving %s: %w", o.Row.Key, err)
		}
		logger.Info("result set archived", "key", o.Row.Key, "archive_id", id)
	}
	return nil
}

func archivePath() string {
	if path := viper.GetString("store.path"); path != "" {
		return path
	}
	return "litscout.db"
}
