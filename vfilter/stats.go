package vfilter

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vertgenlab/gonomics/vcf"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v2"
)

// Stats summarizes the called variants in a VCF, cached alongside the file
// for quick re-runs.
type Stats struct {
	AvgDepth int `yaml:"avg_depth"`
}

// CalcStats returns depth statistics for a VCF, reading a cached
// <base>-stats.yaml when present and writing one otherwise.
func CalcStats(vcfFile string) (Stats, error) {
	base, _ := SplitextPlus(vcfFile)
	cacheFile := base + "-stats.yaml"
	if data, err := os.ReadFile(cacheFile); err == nil {
		var s Stats
		err = yaml.Unmarshal(data, &s)
		return s, err
	}
	s := Stats{AvgDepth: AverageCalledDepth(Depths(vcfFile))}
	data, err := yaml.Marshal(s)
	if err != nil {
		return Stats{}, err
	}
	if err = os.WriteFile(cacheFile, data, 0666); err != nil {
		return Stats{}, err
	}
	return s, nil
}

// Depths returns the DP value of each record carrying one.
func Depths(vcfFile string) []int {
	var depths []int
	records, _ := vcf.GoReadToChan(vcfFile)
	for v := range records {
		if d, found := infoDepth(v.Info); found {
			depths = append(depths, d)
		}
	}
	return depths
}

// AverageCalledDepth is the mean depth rounded up to the next integer.
func AverageCalledDepth(depths []int) int {
	if len(depths) == 0 {
		return 0
	}
	fds := make([]float64, len(depths))
	for i := range depths {
		fds[i] = float64(depths[i])
	}
	return int(math.Ceil(stat.Mean(fds, nil)))
}

// infoDepth pulls the DP field out of a raw INFO string.
func infoDepth(info string) (int, bool) {
	for _, field := range strings.Split(info, ";") {
		parts := strings.SplitN(field, "=", 2)
		if len(parts) == 2 && parts[0] == "DP" {
			d, err := strconv.Atoi(parts[1])
			if err == nil {
				return d, true
			}
		}
	}
	return 0, false
}
