package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seqsift/seqsift/pkg/record"
)

var testRecords = []record.Record{
	{ID: "NM_000546.6", Description: "Homo sapiens tumor protein p53", Sequence: strings.Repeat("ACGT", 25)},
	{ID: "NM_007294.4", Description: "Homo sapiens BRCA1", Sequence: "ACGTACGTAC"},
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestExporter_ExportFASTA(t *testing.T) {
	e := NewExporter(t.TempDir())

	path, err := e.Export("tp53", FormatFASTA, testRecords)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filepath.Base(path) != "tp53.fasta" {
		t.Errorf("path = %q, want base tp53.fasta", path)
	}

	content := readFile(t, path)
	if !strings.Contains(content, ">NM_000546.6 Homo sapiens tumor protein p53") {
		t.Errorf("missing first header in:\n%s", content)
	}
	if !strings.Contains(content, ">NM_007294.4 Homo sapiens BRCA1") {
		t.Errorf("missing second header in:\n%s", content)
	}

	// The 100-symbol body wraps at 60 columns.
	var bodyLens []int
	for _, line := range strings.Split(content, "\n") {
		if line == "" || strings.HasPrefix(line, ">") {
			continue
		}
		bodyLens = append(bodyLens, len(line))
	}
	want := []int{60, 40, 10}
	if len(bodyLens) != len(want) {
		t.Fatalf("body line lengths = %v, want %v", bodyLens, want)
	}
	for i := range want {
		if bodyLens[i] != want[i] {
			t.Errorf("body line %d length = %d, want %d", i, bodyLens[i], want[i])
		}
	}
}

func TestExporter_ExportTSV(t *testing.T) {
	e := NewExporter(t.TempDir())

	path, err := e.Export("table", FormatTSV, testRecords)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	want := TSVHeader + "\n" +
		"NM_000546.6\tHomo sapiens tumor protein p53\t100\n" +
		"NM_007294.4\tHomo sapiens BRCA1\t10\n"
	if got := readFile(t, path); got != want {
		t.Errorf("tsv content = %q, want %q", got, want)
	}
}

func TestExporter_ExportJSON(t *testing.T) {
	e := NewExporter(t.TempDir())

	path, err := e.Export("dump", FormatJSON, testRecords)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var got []struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		Length      int    `json:"length"`
		Sequence    string `json:"sequence"`
	}
	if err := json.Unmarshal([]byte(readFile(t, path)), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("decoded %d records, want 2", len(got))
	}
	if got[0].ID != "NM_000546.6" || got[0].Length != 100 {
		t.Errorf("first record = %+v", got[0])
	}
	if got[1].Sequence != "ACGTACGTAC" {
		t.Errorf("second record sequence = %q", got[1].Sequence)
	}
}

func TestExporter_ExportReport(t *testing.T) {
	long := record.Record{ID: "X1", Description: "synthetic", Sequence: strings.Repeat("A", 80)}
	e := NewExporter(t.TempDir())

	path, err := e.Export("summary", FormatReport, []record.Record{long})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	content := readFile(t, path)
	if !strings.Contains(content, "Total records: 1") {
		t.Errorf("missing record count in:\n%s", content)
	}
	if !strings.Contains(content, "Record 1: X1") {
		t.Errorf("missing record block in:\n%s", content)
	}
	wantPreview := strings.Repeat("A", 50) + "..."
	if !strings.Contains(content, wantPreview) {
		t.Errorf("missing truncated preview in:\n%s", content)
	}
}

func TestExporter_EmptyCollection(t *testing.T) {
	e := NewExporter(t.TempDir())

	tests := []struct {
		format Format
		want   string
	}{
		{FormatFASTA, ""},
		{FormatTSV, TSVHeader + "\n"},
		{FormatJSON, "[]\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			path, err := e.Export("empty", tt.format, nil)
			if err != nil {
				t.Fatalf("Export failed: %v", err)
			}
			if got := readFile(t, path); got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExporter_UnknownFormat(t *testing.T) {
	e := NewExporter(t.TempDir())

	_, err := e.Export("x", Format("genbank"), testRecords)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestExporter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	e := NewExporter(dir)

	path, err := e.Export("records", FormatTSV, testRecords)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path dir = %q, want %q", filepath.Dir(path), dir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat exported file: %v", err)
	}
}

func TestExporter_OverwritesExisting(t *testing.T) {
	e := NewExporter(t.TempDir())

	if _, err := e.Export("out", FormatTSV, testRecords); err != nil {
		t.Fatalf("first export: %v", err)
	}
	path, err := e.Export("out", FormatTSV, testRecords[:1])
	if err != nil {
		t.Fatalf("second export: %v", err)
	}

	content := readFile(t, path)
	if strings.Contains(content, "NM_007294.4") {
		t.Errorf("old content survived overwrite:\n%s", content)
	}
}

func TestExporter_KeepsExplicitExtension(t *testing.T) {
	e := NewExporter(t.TempDir())

	path, err := e.Export("custom.fa", FormatFASTA, testRecords)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filepath.Base(path) != "custom.fa" {
		t.Errorf("path base = %q, want custom.fa", filepath.Base(path))
	}
}

func TestExporter_ExportAll(t *testing.T) {
	e := NewExporter(t.TempDir())

	paths, err := e.ExportAll("all", Formats(), testRecords)
	if err != nil {
		t.Fatalf("ExportAll failed: %v", err)
	}
	if len(paths) != len(Formats()) {
		t.Fatalf("got %d paths, want %d", len(paths), len(Formats()))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("stat %s: %v", p, err)
		}
	}
}

func TestExporter_WriteRaw(t *testing.T) {
	e := NewExporter(t.TempDir())
	body := []byte("LOCUS       NM_000546  2512 bp  mRNA\n//\n")

	path, err := e.WriteRaw("archive", ".gb", body)
	if err != nil {
		t.Fatalf("WriteRaw failed: %v", err)
	}
	if filepath.Base(path) != "archive.gb" {
		t.Errorf("path base = %q, want archive.gb", filepath.Base(path))
	}
	if got := readFile(t, path); got != string(body) {
		t.Errorf("content = %q, want %q", got, body)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"fasta", FormatFASTA, false},
		{"TSV", FormatTSV, false},
		{" json ", FormatJSON, false},
		{"report", FormatReport, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormats_OrderPreserved(t *testing.T) {
	got, err := ParseFormats([]string{"tsv", "fasta"})
	if err != nil {
		t.Fatalf("ParseFormats failed: %v", err)
	}
	if len(got) != 2 || got[0] != FormatTSV || got[1] != FormatFASTA {
		t.Errorf("ParseFormats = %v, want [tsv fasta]", got)
	}
}
