package seqsift_test

import (
	"context"
	"fmt"

	"github.com/seqsift/seqsift"
	"github.com/seqsift/seqsift/pkg/log"
)

// ExampleRun demonstrates a one-call search, filter and export pass.
func ExampleRun() {
	cfg, err := seqsift.NewConfig("you@lab.org", "")
	if err != nil {
		fmt.Printf("bad config: %v\n", err)
		return
	}

	res, err := seqsift.Run(context.Background(), cfg, "results", seqsift.Task{
		Database:  "nucleotide",
		Query:     "BRCA1[Gene name] AND human[Organism]",
		RetMax:    20,
		MinLength: 500,
	})
	if err != nil {
		fmt.Printf("run failed: %v\n", err)
		return
	}

	fmt.Printf("kept %d of %d record(s)\n", res.Kept, res.Fetched)
	for _, p := range res.Paths {
		fmt.Println(p)
	}
}

// ExampleNewConfig shows the identity validation applied to every config.
func ExampleNewConfig() {
	_, err := seqsift.NewConfig("not-an-address", "")
	fmt.Println(err)

	// Output: entrez: email must contain '@': "not-an-address"
}

// ExampleRunComparative demonstrates surveying one gene across organisms.
func ExampleRunComparative() {
	cfg, err := seqsift.ConfigFromEnv()
	if err != nil {
		fmt.Printf("bad config: %v\n", err)
		return
	}

	res, err := seqsift.RunComparative(context.Background(), cfg, "results", seqsift.ComparativeTask{
		Gene:        "hemoglobin",
		Organisms:   []string{"Homo sapiens", "Mus musculus"},
		PerOrganism: 5,
	})
	if err != nil {
		fmt.Printf("survey failed: %v\n", err)
		return
	}

	for organism, n := range res.ByOrganism {
		fmt.Printf("%s: %d record(s)\n", organism, n)
	}
}

// Example_withLogger demonstrates injecting a logger and keeping manifests.
func Example_withLogger() {
	cfg, err := seqsift.NewConfig("you@lab.org", "")
	if err != nil {
		fmt.Printf("bad config: %v\n", err)
		return
	}

	res, err := seqsift.Run(context.Background(), cfg, "results", seqsift.Task{
		Database: "protein",
		Query:    "insulin[Protein Name]",
		RetMax:   10,
	},
		seqsift.WithLogger(log.NewZerologAdapter()),
		seqsift.WithManifestDir("results/.manifests"),
	)
	if err != nil {
		fmt.Printf("run failed: %v\n", err)
		return
	}

	_ = res // Inspect res.Paths, res.Kept...
}
