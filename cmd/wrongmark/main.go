package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/paintcanvas/assetgen"
	"github.com/paintcanvas/assetgen/utils"
)

const HelpBanner = `
wrongmark

Renders the red "X" drawn over wrong cells.
    Version: %s

`

// defaultOutput is the drawable resource of the paint-canvas Android module.
const defaultOutput = "modules/paint-canvas/android/src/main/res/drawable/wrong_mark.png"

// Version indicates the current build version.
var Version string

var (
	destination = flag.String("out", defaultOutput, "Destination")
	round       = flag.Bool("round", false, "Use rounded stroke ends")
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

	mark := assetgen.WrongMark()
	if *round {
		mark = assetgen.RoundWrongMark()
	}
	if err := assetgen.Save(mark.Draw(), *destination); err != nil {
		log.Fatalf("%s %s",
			stderr.Text("Error generating the icon:", utils.ErrorMessage),
			stderr.Text(err.Error(), utils.DefaultMessage),
		)
	}

	fmt.Fprintf(os.Stdout, "✅ %s created!\n",
		stdout.Text(filepath.Base(*destination), utils.SuccessMessage))
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		stderr.Text(utils.FormatTime(time.Since(now)), utils.StatusMessage))
}
