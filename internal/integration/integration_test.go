// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fqfmt/internal/app"
)

var (
	seq = strings.Repeat("GATTACA", 10) + "GATTAC"
	qal = strings.Repeat("IIIIHHHH", 9) + "GGGG"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, in string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run([]string{in}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected stdout: %q", out.String())
	}
}

func read(t *testing.T, fn string) string {
	t.Helper()
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("read %s: %v", fn, err)
	}
	return string(b)
}

func TestEndToEnd(t *testing.T) {
	if len(seq) != 76 || len(qal) != 76 {
		t.Fatalf("fixture widths: %d %d", len(seq), len(qal))
	}
	dir := t.TempDir()
	in := write(t, filepath.Join(dir, "sample.data.txt"), strings.Join([]string{
		"head er 1",
		seq[:30] + " " + seq[30:],
		"  ",
		qal,
		"r2",
		seq[:75], // rejected
		"r3",
		seq,
		"",
		qal,
	}, "\n")+"\n")

	run(t, in)

	got := read(t, filepath.Join(dir, "sample.data_formatted.fastq"))
	want := "@header1\n" + seq + "\n+\n" + qal + "\n" +
		"@r2\n" +
		"@r3\n" + seq + "\n+\n" + qal + "\n"
	if got != want {
		t.Fatalf("output mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestEmptyInputMakesEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	in := write(t, filepath.Join(dir, "empty.txt"), "")
	run(t, in)
	if got := read(t, filepath.Join(dir, "empty_formatted.fastq")); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestGzipMatchesPlain(t *testing.T) {
	dir := t.TempDir()
	body := "h\n" + seq + "\n\n" + qal + "\n"
	plain := write(t, filepath.Join(dir, "a.txt"), body)

	gz := filepath.Join(dir, "b.txt.gz")
	fh, err := os.Create(gz)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	_, _ = gw.Write([]byte(body))
	gw.Close()
	fh.Close()

	run(t, plain)
	run(t, gz)
	a := read(t, filepath.Join(dir, "a_formatted.fastq"))
	b := read(t, filepath.Join(dir, "b.txt_formatted.fastq"))
	if a != b || a == "" {
		t.Fatalf("gzip output differs from plain\nplain: %q\ngzip:  %q", a, b)
	}
}

func TestPlainTextNamedGz(t *testing.T) {
	dir := t.TempDir()
	in := write(t, filepath.Join(dir, "reads.gz"), "h\n"+seq+"\n\n"+qal+"\n")
	run(t, in)
	if got, want := read(t, filepath.Join(dir, "reads_formatted.fastq")), "@h\n"+seq+"\n+\n"+qal+"\n"; got != want {
		t.Fatalf("output mismatch\nwant: %q\ngot:  %q", want, got)
	}
}

func TestRerunOverwrites(t *testing.T) {
	dir := t.TempDir()
	in := write(t, filepath.Join(dir, "x.txt"), "h\n"+seq+"\n\n"+qal+"\n")
	out := write(t, filepath.Join(dir, "x_formatted.fastq"), strings.Repeat("stale\n", 100))
	run(t, in)
	if got := read(t, out); strings.Contains(got, "stale") {
		t.Fatalf("output not overwritten: %q", got)
	}
}
