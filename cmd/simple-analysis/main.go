// Simple example of using the analyzer as a library: build a tiny
// in-memory corpus, run every metric, print the raw tables.
package main

import (
	"fmt"
	"os"

	"github.com/pzaremba/spanscope/internal/analyze"
	"github.com/pzaremba/spanscope/internal/model"
)

func main() {
	doc := model.NewDocument([]string{"The", "drug", "aspirin", "reduces", "pain", "."})
	doc.SetSpans("sc", []model.Span{{Label: "DRUG", Start: 2, End: 3}})
	corpus := model.Corpus{doc}

	analyzer, err := analyze.New(corpus, 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Span layers: %v\n", analyzer.Layers())
	fmt.Printf("Frequency: %v\n", analyzer.Frequency())

	length, err := analyzer.Length()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Length: %v\n", length)

	spanDist, err := analyzer.SpanDistinctiveness()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Span Distinctiveness: %v\n", spanDist)

	boundDist, err := analyzer.BoundaryDistinctiveness()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Boundary Distinctiveness: %v\n", boundDist)
}
