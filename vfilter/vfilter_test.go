package vfilter

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// stubExec captures external tool invocations instead of running them.
func stubExec(t *testing.T, captured *[][]string) {
	old := execCommand
	execCommand = func(name string, args ...string) *exec.Cmd {
		*captured = append(*captured, append([]string{name}, args...))
		return exec.Command("true")
	}
	t.Cleanup(func() { execCommand = old })
}

func copyToDir(t *testing.T, src, dir string) string {
	dst := filepath.Join(dir, filepath.Base(src))
	if err := copyFile(src, dst); err != nil {
		t.Fatal(err)
	}
	return dst
}

func TestSplitextPlus(t *testing.T) {
	tests := []struct {
		path string
		base string
		ext  string
	}{
		{"sample.vcf", "sample", ".vcf"},
		{"sample.vcf.gz", "sample", ".vcf.gz"},
		{"dir/sample.freebayes.vcf.gz", "dir/sample.freebayes", ".vcf.gz"},
		{"sample", "sample", ""},
	}
	for _, test := range tests {
		base, ext := SplitextPlus(test.path)
		if base != test.base || ext != test.ext {
			t.Errorf("SplitextPlus(%q) = %q, %q, want %q, %q", test.path, base, ext, test.base, test.ext)
		}
	}
}

func TestHasVariants(t *testing.T) {
	if !HasVariants("testdata/test.vcf") {
		t.Error("test.vcf has variant records")
	}
	if HasVariants("testdata/empty.vcf") {
		t.Error("empty.vcf has only header lines")
	}
}

func TestHardWithExpression(t *testing.T) {
	var captured [][]string
	stubExec(t, &captured)

	in := copyToDir(t, "testdata/test.vcf", t.TempDir())
	out, err := HardWithExpression(in, "%QUAL < 20 || DP < 4", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	wantOut := strings.TrimSuffix(in, ".vcf") + "-filter.vcf"
	if out != wantOut {
		t.Errorf("output path %s, want %s", out, wantOut)
	}

	if len(captured) != 1 {
		t.Fatalf("expected a single bcftools invocation, got %d", len(captured))
	}
	want := []string{"bcftools", "filter", "-O", "v", "--soft-filter", "+",
		"-e", "%QUAL < 20 || DP < 4", "-m", "+", "-o", wantOut, in}
	got := captured[0]
	if len(got) != len(want) {
		t.Fatalf("bcftools invocation %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bcftools arg %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHardWithExpressionFilterExt(t *testing.T) {
	var captured [][]string
	stubExec(t, &captured)

	in := copyToDir(t, "testdata/test.vcf", t.TempDir())
	out, err := HardWithExpression(in, "QD < 2.0", "SNP", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out, "test-filterSNP.vcf") {
		t.Errorf("filter extension not included in output name: %s", out)
	}
}

func TestHardWithExpressionNoVariants(t *testing.T) {
	var captured [][]string
	stubExec(t, &captured)

	in := copyToDir(t, "testdata/empty.vcf", t.TempDir())
	out, err := HardWithExpression(in, "%QUAL < 20", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(captured) != 0 {
		t.Error("no bcftools invocation expected for a VCF without variants")
	}
	original, err := os.ReadFile(in)
	if err != nil {
		t.Fatal(err)
	}
	copied, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(original) != string(copied) {
		t.Error("variant-free input should be copied through unchanged")
	}
}

func TestHardWithExpressionReusesOutput(t *testing.T) {
	var captured [][]string
	stubExec(t, &captured)

	in := copyToDir(t, "testdata/test.vcf", t.TempDir())
	existing := strings.TrimSuffix(in, ".vcf") + "-filter.vcf"
	if err := os.WriteFile(existing, []byte("placeholder"), 0666); err != nil {
		t.Fatal(err)
	}

	out, err := HardWithExpression(in, "%QUAL < 20", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if out != existing {
		t.Errorf("expected existing output to be reused, got %s", out)
	}
	if len(captured) != 0 {
		t.Error("existing output should skip the bcftools invocation")
	}
}

func TestFreebayesExpression(t *testing.T) {
	// ceil(14 + 3*sqrt(14)) == 26
	expr := freebayesExpression(14)
	if !strings.Contains(expr, "DP > 26") {
		t.Errorf("depth threshold for average depth 14 should be 26, got %s", expr)
	}
	if !strings.Contains(expr, "(AF <= 0.5 && (DP < 4 || (DP < 13 && %QUAL < 10)))") {
		t.Errorf("low depth cutoffs missing from expression %s", expr)
	}
	if !strings.Contains(expr, "(AF > 0.5 && (DP < 4 && %QUAL < 50))") {
		t.Errorf("homozygote cutoffs missing from expression %s", expr)
	}
}

func TestGatkSnpExpression(t *testing.T) {
	expr := gatkSnpExpression("gatk")
	if !strings.Contains(expr, "HaplotypeScore > 13.0") {
		t.Error("UnifiedGenotyper calls should filter on HaplotypeScore")
	}
	if !strings.Contains(expr, "QD < 2.0 || MQ < 40.0 || FS > 60.0") {
		t.Errorf("expected best-practice cutoffs, got %s", expr)
	}

	expr = gatkSnpExpression("gatk-haplotype")
	if strings.Contains(expr, "HaplotypeScore") {
		t.Error("HaplotypeCaller calls should not filter on HaplotypeScore")
	}
}
