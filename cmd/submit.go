package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"eccli/client"
	"eccli/models"
	"eccli/util/parser"
)

var (
	submitYear int
	submitDay  int
	submitPart int
)

var submitCmd = &cobra.Command{
	Use:   "submit ANSWER",
	Short: "Submit a puzzle answer",
	Long: `Submit an answer for one part of a quest and print the server's
verdict. Every attempt is recorded in the local submission history.

Examples:
  eccli submit -d 3 -p 1 1337`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSubmit(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().IntVarP(&submitYear, "year", "y", 2024, "quest year")
	submitCmd.Flags().IntVarP(&submitDay, "day", "d", 0, "quest day (1-20)")
	submitCmd.Flags().IntVarP(&submitPart, "part", "p", 0, "quest part (1-3)")

	submitCmd.MarkFlagRequired("day")
	submitCmd.MarkFlagRequired("part")
}

func runSubmit(ctx context.Context, answer string) error {
	quest := models.Quest{Year: submitYear, Day: submitDay, Part: submitPart}
	if err := quest.Validate(); err != nil {
		return err
	}

	ecClient, err := client.New()
	if err != nil {
		return err
	}
	resp, err := ecClient.SubmitAnswer(ctx, quest, answer)
	if err != nil {
		return err
	}
	fmt.Print(parser.FormatSubmitResponse(resp))
	return nil
}
