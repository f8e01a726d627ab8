package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 0xff, A: 0xff})
	img.SetRGBA(2, 1, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})
	return img
}

func TestGenLogoFile(t *testing.T) {
	src, err := genLogoFile(testImage(), "gopher", "right")
	if err != nil {
		t.Fatal(err)
	}

	for _, exp := range []string{
		"package logo",
		"var gopher3x2 = Image{",
		"Align:  AlignRight,",
		"0xff0000, 0x000000, 0x000000,",
		"0x000000, 0x000000, 0x123456,",
		"Register(&gopher3x2)",
	} {
		if !bytes.Contains(src, []byte(exp)) {
			t.Errorf("expected generated source to contain %q; got:\n%s", exp, src)
		}
	}
}

func TestGenLogoFileErrors(t *testing.T) {
	specs := []struct {
		img    image.Image
		align  string
		expErr string
	}{
		{testImage(), "top", "invalid alignment"},
		{image.NewRGBA(image.Rect(0, 0, 0, 0)), "left", "dimensions"},
		{image.NewRGBA(image.Rect(0, 0, 2000, 1)), "left", "dimensions"},
	}

	for specIndex, spec := range specs {
		if _, err := genLogoFile(spec.img, "logo", spec.align); err == nil || !strings.Contains(err.Error(), spec.expErr) {
			t.Errorf("[spec %d] expected error containing %q; got %v", specIndex, spec.expErr, err)
		}
	}
}

func TestRunTool(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "logo.png")

	f, err := os.Create(imgPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	var stdout bytes.Buffer
	if err := runTool([]string{"-var-name", "test", imgPath}, &stdout); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout.String(), "var test3x2 = Image{") {
		t.Fatalf("unexpected output:\n%s", stdout.String())
	}

	outPath := filepath.Join(dir, "logo.go")
	if err := runTool([]string{"-out", outPath, imgPath}, &stdout); err != nil {
		t.Fatal(err)
	}

	if data, err := os.ReadFile(outPath); err != nil || !bytes.Contains(data, []byte("var logo3x2")) {
		t.Fatalf("expected the generated source to be written to %s; err: %v", outPath, err)
	}

	if err := runTool(nil, &stdout); err == nil {
		t.Fatal("expected an error without an image argument")
	}
}
