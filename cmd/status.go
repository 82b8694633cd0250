package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eccli/client"
	"eccli/database"
	"eccli/models"
)

var (
	statusYear int
	statusDay  int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show unlocked parts and local submission history",
	Long: `Show how many parts of a quest are unlocked and every locally
recorded submission. Without --day, print a per-day summary for the
whole year.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().IntVarP(&statusYear, "year", "y", 2024, "quest year")
	statusCmd.Flags().IntVarP(&statusDay, "day", "d", 0, "quest day (1-20)")
}

func runStatus(ctx context.Context) error {
	if err := models.ValidateYear(statusYear); err != nil {
		return err
	}
	if statusDay == 0 {
		return yearStatus(statusYear)
	}
	if err := models.ValidateDay(statusDay); err != nil {
		return err
	}
	return questStatus(ctx, statusYear, statusDay)
}

// questStatus prints the unlocked part count and the local submission
// history for one quest. History still prints when the server check
// fails, so the command works offline.
func questStatus(ctx context.Context, year, day int) error {
	unlocked := -1
	if ecClient, err := client.New(); err == nil {
		if keys, err := ecClient.FetchQuestKeys(ctx, year, day, false); err == nil {
			unlocked = keys.AvailableParts()
		} else {
			zap.S().Warnf("cannot check unlocked parts: %v", err)
		}
	} else {
		zap.S().Warnf("cannot check unlocked parts: %v", err)
	}
	if unlocked >= 0 {
		fmt.Printf("%d/%d: %d of %d parts unlocked\n", year, day, unlocked, models.MaxPart)
	} else {
		fmt.Printf("%d/%d\n", year, day)
	}

	submissions, err := database.GetSubmissions(year, day)
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			zap.S().Warn("local database unavailable, no submission history")
			return nil
		}
		return err
	}
	if len(submissions) == 0 {
		fmt.Println("no local submissions")
		return nil
	}
	for _, submission := range submissions {
		fmt.Println(formatSubmission(submission))
	}
	return nil
}

func formatSubmission(submission *models.Submission) string {
	verdict := "✗"
	if submission.Correct {
		verdict = "✓"
	}
	return fmt.Sprintf("  part %d  %s %-20s %s",
		submission.Part, verdict, submission.Answer,
		submission.CreatedAt.Format("2006-01-02 15:04"))
}

// yearStatus prints solved parts and attempt counts per day, from the
// local history only.
func yearStatus(year int) error {
	submissions, err := database.GetYearSubmissions(year)
	if err != nil {
		return err
	}
	if len(submissions) == 0 {
		fmt.Printf("no local submissions for %d\n", year)
		return nil
	}

	solved := make(map[int]map[int]bool)
	attempts := make(map[int]int)
	for _, submission := range submissions {
		attempts[submission.Day]++
		if submission.Correct {
			if solved[submission.Day] == nil {
				solved[submission.Day] = make(map[int]bool)
			}
			solved[submission.Day][submission.Part] = true
		}
	}
	for day := models.MinDay; day <= models.MaxDay; day++ {
		if attempts[day] == 0 {
			continue
		}
		fmt.Printf("day %2d: %d of %d parts solved, %d submissions\n",
			day, len(solved[day]), models.MaxPart, attempts[day])
	}
	return nil
}
