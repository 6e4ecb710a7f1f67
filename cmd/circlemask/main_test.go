package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smueschi/circlemask/internal/pipeline"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSquare(t *testing.T, dir string, size int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 30, 60, 90, 255
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "square.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return img
}

func TestProcessCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeSquare(t, dir, 100)
	outPath := filepath.Join(dir, "logo.png")

	out, err := execute(t, "process", "-i", in, "-o", outPath)
	if err != nil {
		t.Fatalf("process: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Successfully processed logo to "+outPath) {
		t.Errorf("missing success message:\n%s", out)
	}
	img := decodeFile(t, outPath)
	if img.Bounds().Dx() != 90 || img.Bounds().Dy() != 90 {
		t.Errorf("output %v, want 90x90", img.Bounds())
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestProcessCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "logo.png")

	_, err := execute(t, "process", "-i", filepath.Join(dir, "missing.png"), "-o", outPath)
	if !errors.Is(err, pipeline.ErrDecode) {
		t.Fatalf("err = %v, want decode error", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Errorf("output should not exist: %v", statErr)
	}
}

func TestMaskCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeSquare(t, dir, 100)
	outPath := filepath.Join(dir, "mask.png")

	if out, err := execute(t, "mask", "-i", in, "-o", outPath); err != nil {
		t.Fatalf("mask: %v\n%s", err, out)
	}
	img := decodeFile(t, outPath)
	if img.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Fatalf("mask bounds %v", img.Bounds())
	}
	if got := color.GrayModel.Convert(img.At(50, 50)).(color.Gray).Y; got != 255 {
		t.Errorf("centre = %d, want 255", got)
	}
	if got := color.GrayModel.Convert(img.At(2, 2)).(color.Gray).Y; got != 0 {
		t.Errorf("corner = %d, want 0", got)
	}
}

func TestIdentifyCommand(t *testing.T) {
	in := writeSquare(t, t.TempDir(), 100)

	out, err := execute(t, "identify", in)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	for _, want := range []string{
		"Format:      png",
		"Dimensions:  100 x 100",
		"Transparent: false",
		"Circle:      center (50,50) radius 45, diameter 90",
		"Result size: 90 x 90",
		"ICC profile: none",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestConfigInitAndUse(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "circlemask.yaml")

	if out, err := execute(t, "config", "init", cfgPath); err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if _, err := execute(t, "config", "init", cfgPath); err == nil {
		t.Error("second init without --force should fail")
	}

	in := writeSquare(t, dir, 40)
	outPath := filepath.Join(dir, "out.png")
	if out, err := execute(t, "--config", cfgPath, "process", "-i", in, "-o", outPath); err != nil {
		t.Fatalf("process with config: %v\n%s", err, out)
	}
	if img := decodeFile(t, outPath); img.Bounds().Dx() != 30 {
		t.Errorf("output width = %d, want 30", img.Bounds().Dx())
	}
}
