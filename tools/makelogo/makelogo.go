// Command makelogo converts an image into Go source that registers a
// framebuffer console logo.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"

	"simplefb/device/video/console/logo"
)

// The max logo dimensions accepted by the tool.
const maxDimension = 1024

func exit(err error) {
	fmt.Fprintf(os.Stderr, "[makelogo] error: %s\n", err.Error())
	os.Exit(1)
}

func parseAlign(align string) (logo.Alignment, string, error) {
	switch align {
	case "left":
		return logo.AlignLeft, "AlignLeft", nil
	case "center":
		return logo.AlignCenter, "AlignCenter", nil
	case "right":
		return logo.AlignRight, "AlignRight", nil
	default:
		return 0, "", errors.Errorf("invalid alignment %q; supported values are: left, center or right", align)
	}
}

func genLogoFile(img image.Image, logoVar, align string) ([]byte, error) {
	alignment, alignName, err := parseAlign(align)
	if err != nil {
		return nil, err
	}

	l := logo.FromImage(img, alignment)
	if l.Width == 0 || l.Height == 0 || l.Width > maxDimension || l.Height > maxDimension {
		return nil, errors.Errorf("logo dimensions must be between 1x1 and %dx%d; got %dx%d", maxDimension, maxDimension, l.Width, l.Height)
	}

	var (
		buf         bytes.Buffer
		logoVarName = fmt.Sprintf("%s%dx%d", logoVar, l.Width, l.Height)
	)

	fmt.Fprintf(&buf, "// Code generated by makelogo. DO NOT EDIT.\n\npackage logo\n\n")
	fmt.Fprintf(&buf, "var %s = Image{\nWidth: %d,\nHeight: %d,\nAlign: %s,\n", logoVarName, l.Width, l.Height, alignName)

	fmt.Fprint(&buf, "Pixels: []uint32{\n")
	for index, rgb := range l.Pixels {
		if index != 0 && index%8 == 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "0x%06x, ", rgb)
	}
	fmt.Fprint(&buf, "\n},\n}\n\n")

	fmt.Fprintf(&buf, "func init() {\nRegister(&%s)\n}\n", logoVarName)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "format generated source")
	}
	return src, nil
}

func runTool(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("makelogo", flag.ContinueOnError)
	logoVar := fs.String("var-name", "logo", "the name of the variable containing the logo data")
	align := fs.String("align", "center", "the horizontal alignment for the logo (left, center or right)")
	output := fs.String("out", "-", "a file to write the generated logo or - to output to STDOUT")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), "makelogo: convert a png/jpg or gif image to a framebuffer console logo\n\n")
		fmt.Fprint(fs.Output(), "Usage: makelogo [options] image\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return errors.New("missing image file argument")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return errors.Wrapf(err, "decode %s", fs.Arg(0))
	}

	src, err := genLogoFile(img, *logoVar, *align)
	if err != nil {
		return err
	}

	if *output == "-" {
		_, err = stdout.Write(src)
		return err
	}

	return errors.Wrapf(os.WriteFile(*output, src, 0644), "write %s", *output)
}

func main() {
	if err := runTool(os.Args[1:], os.Stdout); err != nil {
		exit(err)
	}
}
