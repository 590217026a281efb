// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-mcp/internal/tools"
)

var paperCmd = &cobra.Command{
	Use:   "paper <arxiv-id>",
	Short: "Show metadata and links for one paper",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaper,
}

var fulltextCmd = &cobra.Command{
	Use:   "fulltext <arxiv-id>",
	Short: "Download a paper's PDF and print it as Markdown",
	Long: `Fulltext downloads the paper PDF through the rate gate and converts it
with the configured backend (fulltext.backend: pdf or markitdown). A
conversion that exceeds fulltext.timeout is abandoned and reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runFulltext,
}

func init() {
	paperCmd.Flags().Bool("json", false, "output the paper record as JSON")

	fulltextCmd.Flags().String("backend", "", "conversion backend: pdf or markitdown")
	fulltextCmd.Flags().Duration("timeout", 0, "conversion time limit (default depends on backend)")
	_ = viper.BindPFlag("fulltext.backend", fulltextCmd.Flags().Lookup("backend"))
	_ = viper.BindPFlag("fulltext.timeout", fulltextCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(paperCmd)
	rootCmd.AddCommand(fulltextCmd)
}

func runPaper(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx, stop := commandContext(cmd)
	defer stop()

	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	if jsonOutput {
		p, err := a.papers.GetPaper(ctx, args[0])
		if err != nil {
			return err
		}
		return tools.FormatJSON(p, cmd.OutOrStdout())
	}

	text, err := a.handler.GetPaperData(ctx, tools.PaperInput{PaperID: args[0]})
	return printResult(cmd, text, err)
}

func runFulltext(cmd *cobra.Command, args []string) error {
	ctx, stop := commandContext(cmd)
	defer stop()

	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	text, err := a.handler.GetFullPaperText(ctx, tools.PaperInput{PaperID: args[0]})
	return printResult(cmd, text, err)
}

// printResult writes tool text to the command output. Input errors become
// plain command errors.
func printResult(cmd *cobra.Command, text string, err error) error {
	var inErr *tools.InputError
	if errors.As(err, &inErr) {
		return errors.New(inErr.Message)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}
