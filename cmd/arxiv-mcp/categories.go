// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-mcp/internal/tools"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List or refresh the arXiv category taxonomy",
	Long: `Categories manages the cached arXiv taxonomy (taxonomy.path). The cache
is created from the built-in taxonomy on first use; update refreshes it from
arxiv.org.`,
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and how to use them in search",
	Args:  cobra.NoArgs,
	RunE:  runCategoriesList,
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch the latest taxonomy from arxiv.org and store it",
	Args:  cobra.NoArgs,
	RunE:  runCategoriesUpdate,
}

func init() {
	categoriesListCmd.Flags().String("primary", "", "only list this primary archive (e.g. cs)")

	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesUpdateCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesList(cmd *cobra.Command, _ []string) error {
	primary, _ := cmd.Flags().GetString("primary")

	ctx, stop := commandContext(cmd)
	defer stop()

	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	text, err := a.handler.ListCategories(ctx, tools.CategoriesInput{PrimaryCategory: primary})
	return printResult(cmd, text, err)
}

func runCategoriesUpdate(cmd *cobra.Command, _ []string) error {
	ctx, stop := commandContext(cmd)
	defer stop()

	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	text, err := a.handler.UpdateCategories(ctx, struct{}{})
	return printResult(cmd, text, err)
}
