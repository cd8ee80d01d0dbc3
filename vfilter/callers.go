package vfilter

import (
	"fmt"
	"math"
	"strings"
)

// FreebayesHard removes low confidence calls from FreeBayes results.
func FreebayesHard(vcfFile string, opts Options) (string, error) {
	stats, err := CalcStats(vcfFile)
	if err != nil {
		return "", err
	}
	return HardWithExpression(vcfFile, freebayesExpression(stats.AvgDepth), "", opts)
}

// freebayesExpression builds depth-aware FreeBayes cutoffs.
//
// Low depth cutoffs follow Meynert et al's modeling of homozygote and
// heterozygote calling sensitivity by depth
// (http://www.ncbi.nlm.nih.gov/pubmed/23773188); the high depth heterozygote
// SNP cutoff follows Heng Li's evaluation of variant calling artifacts
// (http://arxiv.org/abs/1404.0929). Tuned on NA12878 calls against the
// Genome in a Bottle reference.
func freebayesExpression(avgDepth int) string {
	depthThresh := int(math.Ceil(float64(avgDepth) + 3*math.Sqrt(float64(avgDepth))))
	return fmt.Sprintf("(AF <= 0.5 && (DP < 4 || (DP < 13 && %%QUAL < 10))) || "+
		"(AF > 0.5 && (DP < 4 && %%QUAL < 50)) || "+
		"(%%QUAL < 500 && DP > %d && AF <= 0.5)", depthThresh)
}

// GatkSnpHard hard filters GATK SNP calls using best-practice recommendations.
func GatkSnpHard(vcfFile, variantCaller string, opts Options) (string, error) {
	return HardWithExpression(vcfFile, gatkSnpExpression(variantCaller), "SNP", opts)
}

func gatkSnpExpression(variantCaller string) string {
	filters := []string{"QD < 2.0", "MQ < 40.0", "FS > 60.0",
		"MQRankSum < -12.5", "ReadPosRankSum < -8.0"}
	// GATK HaplotypeCaller gives much larger HaplotypeScores, resulting in
	// excessive filtering, so skip the metric for that caller
	if variantCaller != "gatk-haplotype" {
		filters = append(filters, "HaplotypeScore > 13.0")
	}
	return strings.Join(filters, " || ")
}

// GatkIndelHard hard filters GATK indel calls using best-practice recommendations.
func GatkIndelHard(vcfFile string, opts Options) (string, error) {
	filters := []string{"QD < 2.0", "ReadPosRankSum < -20.0", "FS > 200.0"}
	return HardWithExpression(vcfFile, strings.Join(filters, " || "), "INDEL", opts)
}
