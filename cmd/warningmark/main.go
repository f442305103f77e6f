package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/paintcanvas/assetgen"
	"github.com/paintcanvas/assetgen/utils"
)

const HelpBanner = `
warningmark

Renders the yellow warning triangle used as the no-dpi wrong cell marker.
    Version: %s

`

const defaultOutput = "modules/paint-canvas/android/src/main/res/drawable-nodpi/wrong_mark.png"

// Version indicates the current build version.
var Version string

var (
	destination = flag.String("out", defaultOutput, "Destination")
	size        = flag.Int("size", assetgen.WarningMarkSize, "Icon size in pixels")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	stdout := utils.NewDecorator(os.Stdout)
	stderr := utils.NewDecorator(os.Stderr)
	now := time.Now()

	img, err := assetgen.RasterSVG(strings.NewReader(assetgen.WarningMarkSVG), *size, *size)
	if err == nil {
		err = assetgen.Save(img, *destination)
	}
	if err != nil {
		log.Fatalf("%s %s",
			stderr.Text("Error:", utils.ErrorMessage),
			stderr.Text(err.Error(), utils.DefaultMessage),
		)
	}

	fmt.Fprintln(os.Stdout,
		stdout.Text("Created transparent yellow triangle warning icon!", utils.SuccessMessage))
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		stderr.Text(utils.FormatTime(time.Since(now)), utils.StatusMessage))
}
