package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdQuestions() *cli.Command {
	return &cli.Command{
		Name:  "questions",
		Usage: "Print the question catalog with answer options",
		Action: func(ctx context.Context, c *cli.Command) error {
			printCatalog(c.Root().Writer, model.DefaultCatalog())
			return nil
		},
	}
}

func printCatalog(w io.Writer, catalog *model.Catalog) {
	category := color.New(color.FgCyan, color.Bold)
	id := color.New(color.Faint)

	for _, cat := range catalog.Categories() {
		category.Fprintf(w, "%s\n", cat.Name)
		for _, q := range cat.Questions {
			fmt.Fprintf(w, "  %s ", q.Prompt)
			id.Fprintf(w, "[%s]\n", q.ID)
			for _, opt := range q.Options() {
				fmt.Fprintf(w, "    %d. %s\n", opt.Value, opt.Label)
			}
		}
		fmt.Fprintln(w)
	}
}
