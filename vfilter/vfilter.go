// Package vfilter hard filters genomic variant calls, tagging records that
// fail fixed boolean expressions over quality metrics. Filtering itself is
// applied by bcftools as an external tool.
package vfilter

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Options controls how the filtering commands run.
type Options struct {
	Bcftools string // path to the bcftools binary, defaults to bcftools on PATH
	Regions  string // optional variant regions file restricting filtering, bgzip indexed on demand
}

func (o Options) bcftoolsPath() string {
	if o.Bcftools == "" {
		return "bcftools"
	}
	return o.Bcftools
}

// HardWithExpression hard filters a VCF using a bcftools expression like
// "%QUAL < 20 || DP < 4". Failing records are tagged in the FILTER column
// rather than removed. Existing output is reused; inputs with no variant
// records are copied through unchanged. Returns the path to the filtered
// (and, for vcf.gz, indexed) output.
func HardWithExpression(vcfFile, expression, filterExt string, opts Options) (string, error) {
	base, ext := SplitextPlus(vcfFile)
	outFile := fmt.Sprintf("%s-filter%s%s", base, filterExt, ext)
	if _, err := os.Stat(outFile); os.IsNotExist(err) {
		if HasVariants(vcfFile) {
			outputType := "v"
			if strings.HasSuffix(outFile, ".gz") {
				outputType = "z"
			}
			args := []string{"filter", "-O", outputType}
			if opts.Regions != "" {
				regions, err := BgzipAndIndex(opts.Regions)
				if err != nil {
					return "", err
				}
				args = append(args, "-t", regions)
			}
			args = append(args, "--soft-filter", "+", "-e", expression, "-m", "+", "-o", outFile, vcfFile)
			log.Printf("hard filtering %s with %s\n", vcfFile, expression)
			if err := runCmd(opts.bcftoolsPath(), args...); err != nil {
				return "", err
			}
		} else if err := copyFile(vcfFile, outFile); err != nil {
			return "", err
		}
	}
	if strings.HasSuffix(outFile, ".vcf.gz") {
		return BgzipAndIndex(outFile)
	}
	return outFile, nil
}
