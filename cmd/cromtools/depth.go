package main

import (
	"flag"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/rsanders/cromTools/vfilter"
	"github.com/vertgenlab/gonomics/exception"
	"golang.org/x/exp/slices"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func depthUsage(depthFlags *flag.FlagSet) {
	fmt.Print(
		"depth - report read depth statistics for called variants in a VCF\n\n" +
			"Usage:\n" +
			"  cromtools depth [options] -i input.vcf.gz\n\n" +
			"Options:\n")
	depthFlags.PrintDefaults()
}

func runDepth(args []string) {
	depthFlags := flag.NewFlagSet("depth", flag.ExitOnError)

	input := depthFlags.String("i", "", "Input VCF file with variant calls. May be gzipped.")
	maxDepth := depthFlags.Int("maxDepth", 0, "Truncate the histogram at INT depth. Set to 0 for no limit.")
	plotFile := depthFlags.String("plot", "", "Write a histogram of called depth to a PNG file.")

	err := depthFlags.Parse(args)
	exception.PanicOnErr(err)
	depthFlags.Usage = func() { depthUsage(depthFlags) }

	if *input == "" {
		depthFlags.Usage()
		errExit("\nERROR: must have input for -i")
	}

	depthStats(*input, *maxDepth, *plotFile)
}

func depthStats(input string, maxDepth int, plotFile string) {
	depths := vfilter.Depths(input)
	if len(depths) == 0 {
		errExit("ERROR: no records with DP found in " + input)
	}
	fmt.Printf("records with depth:\t%d\n", len(depths))
	fmt.Printf("average called depth:\t%d\n", vfilter.AverageCalledDepth(depths))
	fmt.Println(asciigraph.Plot(histogram(depths, maxDepth), asciigraph.Height(10), asciigraph.Precision(0)))

	if plotFile != "" {
		writePlot(depths, plotFile)
	}
}

// histogram counts variants per depth from 0 through maxDepth.
func histogram(depths []int, maxDepth int) []float64 {
	sorted := slices.Clone(depths)
	slices.Sort(sorted)
	if maxDepth == 0 || maxDepth > sorted[len(sorted)-1] {
		maxDepth = sorted[len(sorted)-1]
	}
	counts := make([]float64, maxDepth+1)
	for i := range sorted {
		if sorted[i] > maxDepth {
			break
		}
		counts[sorted[i]]++
	}
	return counts
}

func writePlot(depths []int, plotFile string) {
	vals := make(plotter.Values, len(depths))
	for i := range depths {
		vals[i] = float64(depths[i])
	}
	p := plot.New()
	p.Title.Text = "Called depth distribution"
	p.X.Label.Text = "DP"
	p.Y.Label.Text = "Variants"
	h, err := plotter.NewHist(vals, 50)
	exception.PanicOnErr(err)
	p.Add(h)
	err = p.Save(6*vg.Inch, 4*vg.Inch, plotFile)
	exception.PanicOnErr(err)
}
