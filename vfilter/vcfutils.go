package vfilter

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// execCommand is swapped out in tests to capture external tool invocations.
var execCommand = exec.Command

// runCmd runs an external tool, streaming its stderr through.
func runCmd(name string, args ...string) error {
	cmd := execCommand(name, args...)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// SplitextPlus splits a path into base and extension, keeping double
// extensions like .vcf.gz intact.
func SplitextPlus(path string) (string, string) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	switch ext {
	case ".gz", ".bz2", ".zip":
		inner := filepath.Ext(base)
		base = strings.TrimSuffix(base, inner)
		ext = inner + ext
	}
	return base, ext
}

// HasVariants reports whether a VCF contains any variant records.
func HasVariants(vcfFile string) bool {
	in := fileio.EasyOpen(vcfFile)
	_, done := fileio.EasyNextRealLine(in)
	err := in.Close()
	exception.PanicOnErr(err)
	return !done
}

// BgzipAndIndex bgzip compresses a VCF if needed and builds a tabix index,
// returning the path to the compressed file. An existing index is kept.
func BgzipAndIndex(vcfFile string) (string, error) {
	outFile := vcfFile
	if !strings.HasSuffix(vcfFile, ".gz") {
		outFile = vcfFile + ".gz"
		if err := runCmd("bgzip", "-f", vcfFile); err != nil {
			return "", err
		}
	}
	if _, err := os.Stat(outFile + ".tbi"); os.IsNotExist(err) {
		if err := runCmd("tabix", "-f", "-p", "vcf", outFile); err != nil {
			return "", err
		}
	}
	return outFile, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
