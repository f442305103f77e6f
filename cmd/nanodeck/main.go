package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/paintcanvas/assetgen/deck"
	"github.com/paintcanvas/assetgen/pptx"
	"github.com/paintcanvas/assetgen/utils"
)

const HelpBanner = `
nanodeck

Builds the Nano Banana presentation.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	destination = flag.String("out", deck.DefaultOutput, "Destination")
	verify      = flag.Bool("verify", false, "Read the written file back and list its slides")
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

	if err := deck.Generate(*destination); err != nil {
		log.Fatalf("%s %s",
			stderr.Text("Error:", utils.ErrorMessage),
			stderr.Text(err.Error(), utils.DefaultMessage),
		)
	}
	fmt.Fprintf(os.Stdout, "Presentation saved to %s\n",
		stdout.Text(*destination, utils.SuccessMessage))

	if *verify {
		sum, err := pptx.Open(*destination)
		if err != nil {
			log.Fatalf("%s %v", stderr.Text("Unable to read back the presentation:", utils.ErrorMessage), err)
		}
		printSummary(sum)
	}
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		stderr.Text(utils.FormatTime(time.Since(now)), utils.StatusMessage))
}

// printSummary lists every slide with its title and body paragraph count.
func printSummary(sum *pptx.Summary) {
	for i, s := range sum.Slides {
		var title string
		boxes := s.TextBoxes()
		if len(boxes) > 0 && len(boxes[0].Paragraphs) > 0 {
			title = boxes[0].Paragraphs[0].Text
		}
		paras := 0
		for _, b := range boxes[min(1, len(boxes)):] {
			paras += len(b.Paragraphs)
		}
		fmt.Fprintf(os.Stderr, "%2d. %-40q %d text boxes, %d paragraphs\n",
			i+1, title, len(boxes), paras)
	}
}
