package entrez

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/biogo/biogo/alphabet"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	cfg, err := NewConfig("a@b.com", "")
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	c, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}

func TestNewClient(t *testing.T) {
	t.Run("rejects invalid identity", func(t *testing.T) {
		_, err := NewClient(Config{Email: "nobody"})
		if !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("error = %v, want ErrInvalidEmail", err)
		}
	})

	t.Run("defaults the tool label", func(t *testing.T) {
		c, err := NewClient(Config{Email: "a@b.com"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if c.Config().Tool != DefaultTool {
			t.Errorf("Tool = %q, want %q", c.Config().Tool, DefaultTool)
		}
	})

	t.Run("keeps a custom tool label", func(t *testing.T) {
		c, err := NewClient(Config{Email: "a@b.com", Tool: "mytool"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if c.Config().Tool != "mytool" {
			t.Errorf("Tool = %q, want mytool", c.Config().Tool)
		}
	})
}

func TestClient_RequestValidation(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"search without database", func() error {
			_, err := c.Search(ctx, "", "p53", 10)
			return err
		}},
		{"search without query", func() error {
			_, err := c.Search(ctx, "nucleotide", "", 10)
			return err
		}},
		{"search with zero retmax", func() error {
			_, err := c.Search(ctx, "nucleotide", "p53", 0)
			return err
		}},
		{"search and fetch with negative retmax", func() error {
			_, err := c.SearchAndFetch(ctx, "nucleotide", "p53", -1)
			return err
		}},
		{"fetch without database", func() error {
			_, err := c.Fetch(ctx, "", []int{1})
			return err
		}},
		{"fetch raw without rettype", func() error {
			_, err := c.FetchRaw(ctx, "nucleotide", "", []int{1})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err == nil {
				t.Error("expected a validation error, got nil")
			}
		})
	}
}

func TestClient_EmptyIDListFetchesNothing(t *testing.T) {
	c := testClient(t)

	rs, err := c.Fetch(context.Background(), "nucleotide", nil)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(rs) != 0 {
		t.Errorf("got %d records, want 0", len(rs))
	}

	body, err := c.FetchRaw(context.Background(), "nucleotide", "gb", nil)
	if err != nil {
		t.Fatalf("FetchRaw failed: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("got %d bytes, want 0", len(body))
	}
}

func TestClient_CanceledContext(t *testing.T) {
	c := testClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Search(ctx, "nucleotide", "p53", 5); !errors.Is(err, context.Canceled) {
		t.Errorf("Search error = %v, want context.Canceled", err)
	}
	if _, err := c.SearchAndFetch(ctx, "nucleotide", "p53", 5); !errors.Is(err, context.Canceled) {
		t.Errorf("SearchAndFetch error = %v, want context.Canceled", err)
	}
	if _, err := c.Databases(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Databases error = %v, want context.Canceled", err)
	}
}

func TestParseFASTA(t *testing.T) {
	in := ">NM_000546.6 Homo sapiens tumor protein p53\n" +
		"ACGTACGTACGTACGT\n" +
		"ACGT\n" +
		">NM_007294.4 Homo sapiens BRCA1\n" +
		"TTTTCCCC\n"

	rs, err := parseFASTA(strings.NewReader(in), alphabet.DNAredundant)
	if err != nil {
		t.Fatalf("parseFASTA failed: %v", err)
	}
	if len(rs) != 2 {
		t.Fatalf("got %d records, want 2", len(rs))
	}

	if rs[0].ID != "NM_000546.6" {
		t.Errorf("first ID = %q", rs[0].ID)
	}
	if rs[0].Description != "Homo sapiens tumor protein p53" {
		t.Errorf("first description = %q", rs[0].Description)
	}
	if rs[0].Sequence != "ACGTACGTACGTACGTACGT" {
		t.Errorf("first sequence = %q", rs[0].Sequence)
	}
	if rs[1].ID != "NM_007294.4" || rs[1].Sequence != "TTTTCCCC" {
		t.Errorf("second record = %+v", rs[1])
	}
}

func TestParseFASTA_Protein(t *testing.T) {
	in := ">P04637 cellular tumor antigen p53\nMEEPQSDPSV\n"

	rs, err := parseFASTA(strings.NewReader(in), alphabet.Protein)
	if err != nil {
		t.Fatalf("parseFASTA failed: %v", err)
	}
	if len(rs) != 1 || rs[0].Sequence != "MEEPQSDPSV" {
		t.Errorf("records = %+v", rs)
	}
}

func TestParseFASTA_Empty(t *testing.T) {
	rs, err := parseFASTA(strings.NewReader(""), alphabet.DNAredundant)
	if err != nil {
		t.Fatalf("parseFASTA failed: %v", err)
	}
	if rs == nil || len(rs) != 0 {
		t.Errorf("records = %#v, want empty non-nil slice", rs)
	}
}

func TestAlphabetFor(t *testing.T) {
	if alphabetFor("protein") != alphabet.Protein {
		t.Error("protein database should parse with the protein alphabet")
	}
	if alphabetFor("nucleotide") != alphabet.DNAredundant {
		t.Error("nucleotide database should parse with the redundant DNA alphabet")
	}
}

func TestChunkIDs(t *testing.T) {
	ids := make([]int, 0, 450)
	for i := 0; i < 450; i++ {
		ids = append(ids, i)
	}

	batches := chunkIDs(ids, 200)
	if len(batches) != 3 {
		t.Fatalf("got %d batches, want 3", len(batches))
	}
	if len(batches[0]) != 200 || len(batches[1]) != 200 || len(batches[2]) != 50 {
		t.Fatalf("batch sizes = %d/%d/%d, want 200/200/50",
			len(batches[0]), len(batches[1]), len(batches[2]))
	}
	if batches[0][0] != 0 || batches[1][0] != 200 || batches[2][49] != 449 {
		t.Error("batches should preserve id order")
	}

	small := chunkIDs([]int{1, 2, 3}, 200)
	if len(small) != 1 || len(small[0]) != 3 {
		t.Errorf("small list should stay a single batch, got %v", small)
	}
}

func TestGeneQuery(t *testing.T) {
	got := GeneQuery("TP53", "Homo sapiens")
	want := `TP53[Gene name] AND "Homo sapiens"[Organism]`
	if got != want {
		t.Errorf("GeneQuery = %q, want %q", got, want)
	}
}
