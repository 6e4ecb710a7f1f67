package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smueschi/circlemask/internal/color"
	"github.com/smueschi/circlemask/internal/imageio"
	"github.com/smueschi/circlemask/internal/mask"
	"github.com/smueschi/circlemask/internal/raster"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect an image, its ICC profile and the circle process would cut",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := imageio.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	decoded, err := imageio.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Format:      %s\n", info.Format)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", decoded.Width, decoded.Height)
	fmt.Fprintf(out, "Color model: %s\n", info.ColorModel)
	fmt.Fprintf(out, "File size:   %d bytes (%.1f MB)\n", len(data), float64(len(data))/(1024*1024))
	fmt.Fprintf(out, "Transparent: %t\n", raster.HasTransparency(decoded.Image))

	m, c := mask.New(decoded.Image.Bounds())
	if c.Empty() {
		fmt.Fprintf(out, "Circle:      none (image smaller than %d px inset)\n", 2*mask.Inset)
	} else {
		fmt.Fprintf(out, "Circle:      %s, diameter %d\n", c, c.Diameter())
	}
	if box, ok := raster.OpaqueBounds(raster.Composite(decoded.Image, m)); ok {
		fmt.Fprintf(out, "Result size: %d x %d\n", box.Dx(), box.Dy())
	} else {
		fmt.Fprintf(out, "Result size: %d x %d (nothing visible inside circle)\n", decoded.Width, decoded.Height)
	}

	if info.ICC != nil {
		pi, err := color.ParseProfileInfo(info.ICC)
		if err != nil {
			fmt.Fprintf(out, "ICC profile: present (%d bytes) but invalid: %v\n", len(info.ICC), err)
		} else {
			fmt.Fprintf(out, "ICC profile: %d bytes\n", len(info.ICC))
			if pi.Description != "" {
				fmt.Fprintf(out, "  Name:        %s\n", pi.Description)
			}
			fmt.Fprintf(out, "  Version:     %s\n", pi.Version)
			fmt.Fprintf(out, "  Color space: %s\n", color.ColorSpaceName(pi.ColorSpace))
			fmt.Fprintf(out, "  PCS:         %s\n", color.ColorSpaceName(pi.PCS))
			fmt.Fprintf(out, "  Class:       %s\n", color.ProfileClassName(pi.Class))
		}
	} else {
		fmt.Fprintln(out, "ICC profile: none")
	}

	return nil
}
