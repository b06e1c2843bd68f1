package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
	"github.com/secmon-lab/execdiag/pkg/repository/memory"
	"github.com/secmon-lab/execdiag/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdScore() *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "Print the category scores and action steps of an answer file",
		ArgsUsage: "<answer file>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one answer file is required")
			}

			sheet, err := loadAnswerSheet(c.Args().First())
			if err != nil {
				return err
			}

			uc := usecase.New(memory.New())
			snapshot, err := uc.Report.SnapshotAnswers(sheet)
			if err != nil {
				return goerr.Wrap(err, "failed to score answer file")
			}

			printScores(c.Root().Writer, snapshot)
			return nil
		},
	}
}

func levelColor(level types.Level) *color.Color {
	switch level {
	case types.LevelHigh:
		return color.New(color.FgGreen, color.Bold)
	case types.LevelMedium:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// printScores writes a score table followed by the recommended action steps
func printScores(w io.Writer, snapshot *model.AssessmentSnapshot) {
	heading := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	heading.Fprintf(w, "%s (%s)\n\n", snapshot.Name, snapshot.Role.Label())

	for _, cs := range snapshot.Scores {
		fmt.Fprintf(w, "  %-30s %s/4  %3d%%  ", cs.Name, cs.ScoreLabel(), cs.Percentage)
		levelColor(cs.Level).Fprintf(w, "%-6s", cs.Level)
		fmt.Fprintln(w)
		dim.Fprintf(w, "  %s\n", model.Insight(cs.CategoryID, cs.Level))
	}

	fmt.Fprintln(w)
	heading.Fprintln(w, "Action steps")
	for i, step := range model.SelectActionSteps(snapshot.Scores) {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step.Title)
	}
}
