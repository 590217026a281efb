// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-mcp/internal/arxiv"
	"github.com/pdiddy/arxiv-mcp/internal/tools"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search arXiv for papers",
	Long: `Search queries the arXiv API. The query accepts arXiv syntax such as
ti:, abs:, au:, cat: and the AND, OR, ANDNOT operators; multiple arguments
are joined with spaces. Dates restrict the submission date; an open end
defaults to today and an open start to the first arXiv submission.

Text output is limited to 10 results like the search_papers tool. With
--json or --save the full --max-results page (up to 2000) is kept.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if load, _ := cmd.Flags().GetString("load"); load != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("max-results", tools.ToolMaxResults, "maximum number of results to return")
	searchCmd.Flags().String("sort-by", string(types.SortSubmittedDate), "sort field: submitted_date, updated_date, or relevance")
	searchCmd.Flags().String("sort-order", string(types.SortDescending), "sort direction: descending or ascending")
	searchCmd.Flags().String("from", "", "submission date range start (YYYY-MM-DD)")
	searchCmd.Flags().String("to", "", "submission date range end (YYYY-MM-DD)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save the query and results to a YAML file")
	searchCmd.Flags().String("load", "", "print results from a saved query file without contacting arXiv")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	sortBy, _ := cmd.Flags().GetString("sort-by")
	sortOrder, _ := cmd.Flags().GetString("sort-order")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")
	loadPath, _ := cmd.Flags().GetString("load")

	if loadPath != "" {
		qf, err := arxiv.ReadQueryFile(loadPath)
		if err != nil {
			return err
		}
		return printSearch(cmd, qf.Result, jsonOutput)
	}

	ctx, stop := commandContext(cmd)
	defer stop()

	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	query := strings.Join(args, " ")

	if jsonOutput || savePath != "" {
		params := types.SearchParams{
			Query:      query,
			MaxResults: maxResults,
			SortBy:     types.SortBy(sortBy),
			SortOrder:  types.SortOrder(sortOrder),
			DateFrom:   from,
			DateTo:     to,
		}
		res, err := a.papers.Search(ctx, params)
		if err != nil {
			return err
		}
		if savePath != "" {
			if err := arxiv.WriteQueryFile(savePath, params, res, time.Now()); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Saved query to", savePath)
		}
		return printSearch(cmd, res, jsonOutput)
	}

	text, err := a.handler.SearchPapers(ctx, tools.SearchInput{
		Query:      query,
		MaxResults: maxResults,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
		DateFrom:   from,
		DateTo:     to,
	})
	return printResult(cmd, text, err)
}

func printSearch(cmd *cobra.Command, res types.SearchResult, jsonOutput bool) error {
	if jsonOutput {
		return tools.FormatJSON(res, cmd.OutOrStdout())
	}
	tools.FormatSearch(res, cmd.OutOrStdout())
	return nil
}
