package handlers

import (
	"context"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/spf13/cobra"

	"github.com/evalops/scorebench/cmd/scorebench/config"
	"github.com/evalops/scorebench/cmd/scorebench/utils"
	"github.com/evalops/scorebench/internal/batch"
	"github.com/evalops/scorebench/internal/dataset"
	"github.com/evalops/scorebench/internal/logging"
	"github.com/evalops/scorebench/internal/names"
	"github.com/evalops/scorebench/internal/storage"
)

// HandlePrepare downloads (or loads) the dataset, splits it reproducibly,
// uploads the train and validation splits to object storage as paired
// feature/label objects, and writes the held-out test split locally.
//
// The run name scopes the object storage prefix so repeated preparations of
// the same bucket never overwrite each other.
func HandlePrepare(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if err := config.ValidatePrepareFlags(); err != nil {
		return err
	}

	runName := config.Prepare.RunName
	if runName == "" {
		runName = names.Generate()
		logging.Info("Generated run name: %s", runName)
	}

	ctx := context.Background()

	var matrix [][]float64
	var err error
	if config.Prepare.DatasetFile != "" {
		matrix, err = dataset.Load(config.Prepare.DatasetFile)
	} else {
		timeout := time.Duration(config.Prepare.TimeoutSeconds) * time.Second
		matrix, err = dataset.Fetch(ctx, config.Prepare.DatasetURL, timeout)
	}
	if err != nil {
		return err
	}
	if len(matrix) == 0 {
		return fmt.Errorf("dataset is empty")
	}

	train, val, test := dataset.Split(matrix,
		config.Prepare.TrainFraction, config.Prepare.ValFraction, config.Prepare.Seed)
	logging.Info("Split dataset: %d train, %d validation, %d test rows (seed %d)",
		len(train), len(val), len(test), config.Prepare.Seed)

	prefix := path.Join(config.Prepare.Prefix, runName)
	uploader, err := storage.NewUploader(ctx, config.Prepare.Bucket, prefix)
	if err != nil {
		return err
	}

	for channel, split := range map[string][][]float64{
		"train":      train,
		"validation": val,
	} {
		labels, features, err := dataset.SplitLabels(split)
		if err != nil {
			return fmt.Errorf("%s split: %w", channel, err)
		}
		if err := uploader.UploadSplit(ctx, channel, features, labels); err != nil {
			return err
		}
	}

	if err := os.WriteFile(config.Prepare.TestOut, batch.EncodeRows(test), 0o644); err != nil {
		return fmt.Errorf("failed to write test split: %w", err)
	}
	logging.Success("Wrote held-out test split: %d rows to %s", len(test), config.Prepare.TestOut)

	logging.Success("Prepared run '%s': training data under s3://%s/%s",
		runName, config.Prepare.Bucket, prefix)
	return nil
}
