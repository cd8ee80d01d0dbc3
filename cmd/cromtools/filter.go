package main

import (
	"flag"
	"fmt"

	"github.com/rsanders/cromTools/vfilter"
	"github.com/vertgenlab/gonomics/exception"
)

func filterUsage(filterFlags *flag.FlagSet) {
	fmt.Print(
		"filter - hard filter variant calls with caller-specific bcftools expressions\n\n" +
			"Failing records are tagged in the FILTER column, not removed. The path of the\n" +
			"filtered file prints to stdout.\n\n" +
			"Usage:\n" +
			"  cromtools filter [options] -i input.vcf.gz -caller freebayes\n\n" +
			"Options:\n")
	filterFlags.PrintDefaults()
}

func runFilter(args []string) {
	filterFlags := flag.NewFlagSet("filter", flag.ExitOnError)

	input := filterFlags.String("i", "", "Input VCF file with variant calls. May be gzipped.")
	caller := filterFlags.String("caller", "", "Variant caller that produced the input. One of freebayes, gatk-snp, gatk-indel.")
	expression := filterFlags.String("e", "", "Custom bcftools filter expression (e.g. '%QUAL < 20 || DP < 4'). Overrides -caller.")
	filterExt := filterFlags.String("ext", "", "Extension added to the output name after -filter when using -e.")
	variantCaller := filterFlags.String("variantCaller", "gatk", "Caller variant for gatk-snp filtering. Set to gatk-haplotype to skip the HaplotypeScore cutoff.")
	regions := filterFlags.String("t", "", "BED file of variant regions restricting filtering. Indexed with bgzip/tabix on demand.")
	bcftools := filterFlags.String("bcftools", "bcftools", "Path to the bcftools binary.")

	err := filterFlags.Parse(args)
	exception.PanicOnErr(err)
	filterFlags.Usage = func() { filterUsage(filterFlags) }

	if *input == "" {
		filterFlags.Usage()
		errExit("\nERROR: must have input for -i")
	}
	if *expression == "" && *caller == "" {
		filterFlags.Usage()
		errExit("\nERROR: must set -caller or -e")
	}

	opts := vfilter.Options{Bcftools: *bcftools, Regions: *regions}
	var out string
	switch {
	case *expression != "":
		out, err = vfilter.HardWithExpression(*input, *expression, *filterExt, opts)
	case *caller == "freebayes":
		out, err = vfilter.FreebayesHard(*input, opts)
	case *caller == "gatk-snp":
		out, err = vfilter.GatkSnpHard(*input, *variantCaller, opts)
	case *caller == "gatk-indel":
		out, err = vfilter.GatkIndelHard(*input, opts)
	default:
		filterFlags.Usage()
		errExit("\nERROR: unrecognized caller: " + *caller)
	}
	if err != nil {
		errExit("\nERROR: " + err.Error())
	}
	fmt.Println(out)
}
