package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const responsesCSV = `Street Address,Timestamp,Date of Contact,Type of Contact,How many dogs do they have?,Census Tract
address_one,10/4/2016 15:09:24,10/4/2016 15:09:24,Phone Call,4,44.5
address_two,10/4/2016 11:47:55,10/4/2016 11:47:55,Phone Call,,55.6
address_one,12/1/2017 06:03:22,12/1/2017 06:03:22,C.A.R.E. Letter,3,44.5
,12/2/2017 06:03:22,12/2/2017 06:03:22,Phone Call,1,
`

// setup writes a CSV and a config into a temp dir and returns the config
// path and output dir.
func setup(t *testing.T, csvBody string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "responses.csv")
	outDir := filepath.Join(dir, "reports")
	cfgPath := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(csvPath, []byte(csvBody), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := "forms_version: V1\n" +
		"source:\n  type: csv\n  path: " + csvPath + "\n" +
		"output_dir: " + outDir + "\n" +
		"file_name_format: \"{address}.txt\"\n" +
		"log_level: error\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	return cfgPath, outDir
}

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, verbose = "config.yaml", false
	dryRun, onlyAddress, outputFormat = false, "", ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateText(t *testing.T) {
	cfgPath, outDir := setup(t, responsesCSV)

	out, err := execute(t, "generate", "--config", cfgPath)
	if err != nil {
		t.Fatalf("generate error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "Dropped:       1") || !strings.Contains(out, "Addresses:     2") {
		t.Errorf("output:\n%s", out)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "address_two.txt"))
	if err != nil {
		t.Fatal(err)
	}
	want := "Address: address_two\n\nPhone Call Dates: [2016-10-04 11:47:55]\n\nCensus Tract: 55.6\n"
	if string(data) != want {
		t.Errorf("address_two.txt = %q, want %q", data, want)
	}

	summaries, _ := filepath.Glob(filepath.Join(outDir, "run_summary_*.txt"))
	if len(summaries) != 1 {
		t.Errorf("run summaries = %v", summaries)
	}
}

func TestGenerateStdoutSingleAddress(t *testing.T) {
	cfgPath, _ := setup(t, responsesCSV)

	out, err := execute(t, "generate", "--config", cfgPath, "--format", "stdout", "--address", "address_one")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	want := "Address: address_one\n\n" +
		"C.A.R.E. Letter Date: 2017-12-01 06:03:22\n" +
		"Phone Call Dates: [2016-10-04 15:09:24]\n\n" +
		"Census Tract: 44.5\n\n" +
		"Num Dogs: 3\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestGenerateDryRun(t *testing.T) {
	cfgPath, outDir := setup(t, responsesCSV)

	out, err := execute(t, "generate", "--config", cfgPath, "--dry-run")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.Contains(out, "Dry run") {
		t.Errorf("output:\n%s", out)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("dry run created %s", outDir)
	}
}

func TestGenerateEmptySheet(t *testing.T) {
	cfgPath, outDir := setup(t, "")

	out, err := execute(t, "generate", "--config", cfgPath)
	if err != nil {
		t.Fatalf("generate error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "Rows read:     0") || !strings.Contains(out, "Addresses:     0") {
		t.Errorf("output:\n%s", out)
	}
	reports, _ := filepath.Glob(filepath.Join(outDir, "*.txt"))
	if len(reports) != 1 || !strings.HasPrefix(filepath.Base(reports[0]), "run_summary_") {
		t.Errorf("files written = %v, want only the run summary", reports)
	}
}

func TestGenerateErrors(t *testing.T) {
	cfgPath, _ := setup(t, responsesCSV)

	if _, err := execute(t, "generate", "--config", cfgPath, "--address", "nowhere"); err == nil {
		t.Error("unknown address: error = nil")
	}
	if _, err := execute(t, "generate", "--config", cfgPath, "--format", "pdf"); err == nil {
		t.Error("bad format: error = nil")
	}

	bad, _ := setup(t, "Street Address,Timestamp,Date of Contact\na,yesterday,yesterday\n")
	if _, err := execute(t, "generate", "--config", bad); err == nil {
		t.Error("bad timestamp: error = nil")
	}
}

func TestValidate(t *testing.T) {
	cfgPath, _ := setup(t, responsesCSV)
	out, err := execute(t, "validate", "--config", cfgPath)
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if !strings.Contains(out, "Header OK.") {
		t.Errorf("output:\n%s", out)
	}

	noAddr, _ := setup(t, "Timestamp,Date of Contact\n1/1/2017,1/1/2017\n")
	out, err = execute(t, "validate", "--config", noAddr)
	if err == nil {
		t.Fatal("validate without address column: error = nil")
	}
	if !strings.Contains(out, `missing column "Street Address"`) {
		t.Errorf("output:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Version:       "+Version) || !strings.Contains(out, "Forms:         V1") {
		t.Errorf("output:\n%s", out)
	}
}
