package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smueschi/circlemask/internal/imageio"
	"github.com/smueschi/circlemask/internal/mask"
)

var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "Write the circle mask process would use for an image as a grayscale PNG",
	Args:  cobra.NoArgs,
	RunE:  runMask,
}

func init() {
	maskCmd.Flags().StringP("input", "i", "", "Input image file")
	maskCmd.Flags().StringP("output", "o", "", "Output mask PNG file")
	maskCmd.MarkFlagRequired("input")
	maskCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(maskCmd)
}

func runMask(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	decoded, err := imageio.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	m, c := mask.New(decoded.Image.Bounds())
	logger.WithField("circle", c.String()).Debug("built mask")

	encOpts, err := cfg.EncoderOptions()
	if err != nil {
		return err
	}
	encoded, err := imageio.EncodePNG(mask.Preview(m), encOpts)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if err := imageio.WriteFileAtomic(outputPath, encoded, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dx%d mask (%s) → %s (%d bytes)\n",
		decoded.Width, decoded.Height, c, outputPath, len(encoded))
	return nil
}
