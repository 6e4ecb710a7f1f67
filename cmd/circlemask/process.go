package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smueschi/circlemask/internal/pipeline"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Keep the centred circle of a logo, make the rest transparent and crop (PNG output)",
	Args:  cobra.NoArgs,
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringP("input", "i", "", "Input image file")
	processCmd.Flags().StringP("output", "o", "", "Output PNG file")
	processCmd.MarkFlagRequired("input")
	processCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	encOpts, err := cfg.EncoderOptions()
	if err != nil {
		return err
	}

	result, err := pipeline.ProcessFile(inputPath, outputPath, pipeline.Options{
		Encoder: encOpts,
		Logger:  logger,
	})
	if err != nil {
		var perr *pipeline.Error
		if errors.As(err, &perr) {
			logger.WithFields(logrus.Fields{
				"kind": perr.Kind.String(),
				"path": perr.Path,
			}).WithError(perr.Err).Debug("processing failed")
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully processed logo to %s\n", outputPath)
	fmt.Fprintf(out, "Input:  %s (%s, %dx%d)\n", inputPath, result.Format, result.SrcWidth, result.SrcHeight)
	fmt.Fprintf(out, "Circle: %s\n", result.Circle)
	if result.Empty {
		fmt.Fprintf(out, "Output: %dx%d, fully transparent, not cropped (%d bytes)\n", result.Width, result.Height, len(result.Data))
	} else {
		fmt.Fprintf(out, "Output: %dx%d (%d bytes)\n", result.Width, result.Height, len(result.Data))
	}
	return nil
}
