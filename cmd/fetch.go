package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eccli/client"
	"eccli/config"
	"eccli/enums"
	"eccli/models"
	"eccli/storage"
	"eccli/util/parser"
)

var (
	fetchYear             int
	fetchDay              int
	fetchPart             int
	fetchAllParts         bool
	fetchDescriptionOnly  bool
	fetchInputOnly        bool
	fetchDescriptionPath  string
	fetchInputPath        string
	fetchSamplePath       string
	fetchSampleAnswerPath string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and decrypt puzzle inputs and descriptions",
	Long: `Download the encrypted description and personal input for a quest,
decrypt them and save them under the base directory. Samples and
expected answers found in the description are saved per part.

Examples:
  # description and part 1 input
  eccli fetch -d 3

  # part 2 input only
  eccli fetch -d 3 -p 2 --input-only

  # inputs for every unlocked part
  eccli fetch -d 3 --all-parts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().IntVarP(&fetchYear, "year", "y", 2024, "quest year")
	fetchCmd.Flags().IntVarP(&fetchDay, "day", "d", 0, "quest day (1-20)")
	fetchCmd.Flags().IntVarP(&fetchPart, "part", "p", 1, "quest part (1-3)")
	fetchCmd.Flags().BoolVar(&fetchAllParts, "all-parts", false, "fetch inputs for every unlocked part")
	fetchCmd.Flags().BoolVar(&fetchDescriptionOnly, "description-only", false, "download description only (skip input)")
	fetchCmd.Flags().BoolVar(&fetchInputOnly, "input-only", false, "download input only (skip description)")
	fetchCmd.Flags().StringVar(&fetchDescriptionPath, "description-path", "", "exact path for the description file")
	fetchCmd.Flags().StringVar(&fetchInputPath, "input-path", "", "exact path for the input file")
	fetchCmd.Flags().StringVar(&fetchSamplePath, "sample-path", "", "exact path for the sample file")
	fetchCmd.Flags().StringVar(&fetchSampleAnswerPath, "sample-answer-path", "", "exact path for the expected answer file")

	fetchCmd.MarkFlagRequired("day")
	fetchCmd.MarkFlagsMutuallyExclusive("description-only", "input-only")
	fetchCmd.MarkFlagsMutuallyExclusive("part", "all-parts")
}

func runFetch(ctx context.Context) error {
	quest := models.Quest{Year: fetchYear, Day: fetchDay, Part: fetchPart}
	if err := quest.Validate(); err != nil {
		return err
	}

	ecClient, err := client.New()
	if err != nil {
		return err
	}
	store := storage.New(config.Env.DataDir)
	store.Override(enums.AssetKindDescription, fetchDescriptionPath)
	store.Override(enums.AssetKindInput, fetchInputPath)
	store.Override(enums.AssetKindSample, fetchSamplePath)
	store.Override(enums.AssetKindAnswer, fetchSampleAnswerPath)

	if !fetchInputOnly {
		if err := fetchDescription(ctx, ecClient, store, quest); err != nil {
			return err
		}
	}
	if !fetchDescriptionOnly {
		if fetchAllParts {
			return fetchAllInputs(ctx, ecClient, store, quest)
		}
		return fetchOneInput(ctx, ecClient, store, quest)
	}
	return nil
}

func fetchDescription(ctx context.Context, ecClient *client.Client, store *storage.Storage, quest models.Quest) error {
	description, err := ecClient.FetchDescription(ctx, quest.Year, quest.Day)
	if err != nil {
		return err
	}
	path, err := store.Save(enums.AssetKindDescription, &quest, description)
	if err != nil {
		return err
	}
	zap.S().Infof("description saved to %s", path)
	return saveSamples(store, quest, description)
}

// saveSamples extracts the last sample block and the expected answer of
// each part in the description and saves them next to the inputs.
func saveSamples(store *storage.Storage, quest models.Quest, description string) error {
	part1, part2, part3 := parser.SplitParts(description)
	for i, markup := range []string{part1, part2, part3} {
		if markup == "" {
			continue
		}
		partQuest := models.Quest{Year: quest.Year, Day: quest.Day, Part: i + 1}
		samples := parser.ExtractSamples(markup)
		if len(samples) == 0 {
			continue
		}
		path, err := store.Save(enums.AssetKindSample, &partQuest, samples[len(samples)-1])
		if err != nil {
			return err
		}
		zap.S().Infof("sample for part %d saved to %s", partQuest.Part, path)

		answer, found := parser.ExtractExpectedAnswer(markup)
		if !found {
			zap.S().Warnf("could not extract expected answer for part %d", partQuest.Part)
			continue
		}
		answerPath, err := store.Save(enums.AssetKindAnswer, &partQuest, answer)
		if err != nil {
			return err
		}
		zap.S().Infof("expected answer for part %d saved to %s", partQuest.Part, answerPath)
	}
	return nil
}

func fetchOneInput(ctx context.Context, ecClient *client.Client, store *storage.Storage, quest models.Quest) error {
	input, err := ecClient.FetchInput(ctx, quest)
	if err != nil {
		return err
	}
	path, err := store.Save(enums.AssetKindInput, &quest, input)
	if err != nil {
		return err
	}
	zap.S().Infof("input for part %d saved to %s", quest.Part, path)
	return nil
}

// fetchAllInputs downloads the input of every unlocked part in
// parallel. The first failure cancels the remaining fetches.
func fetchAllInputs(ctx context.Context, ecClient *client.Client, store *storage.Storage, quest models.Quest) error {
	keys, err := ecClient.FetchQuestKeys(ctx, quest.Year, quest.Day, false)
	if err != nil {
		return err
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	parts := keys.AvailableParts()
	for part := 1; part <= parts; part++ {
		wg.Add(1)
		go func(part int) {
			defer wg.Done()
			partQuest := models.Quest{Year: quest.Year, Day: quest.Day, Part: part}
			if err := fetchOneInput(fetchCtx, ecClient, store, partQuest); err != nil {
				errOnce.Do(func() {
					firstErr = fmt.Errorf("part %d: %w", part, err)
					cancel()
				})
			}
		}(part)
	}
	wg.Wait()
	return firstErr
}
