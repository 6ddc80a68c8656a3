package fastqio

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// OutputSuffix is appended to the input stem to name the output file.
const OutputSuffix = "_formatted.fastq"

// OutputPath derives the output file name from the input path: split on
// ".", drop the last segment, rejoin, and append OutputSuffix. Directories
// in the path are kept, so the output lands next to the input.
//
//	sample.data.txt -> sample.data_formatted.fastq
//	reads           -> _formatted.fastq
func OutputPath(input string) string {
	parts := strings.Split(input, ".")
	return strings.Join(parts[:len(parts)-1], ".") + OutputSuffix
}

// WriteLines creates or truncates path and writes each line verbatim.
// Lines are expected to carry their own terminator.
func WriteLines(path string, lines []string) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(fh)
	for _, l := range lines {
		if _, err := w.WriteString(l); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
