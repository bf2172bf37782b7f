// Command chainsolve evaluates a YAML graph document and prints every
// node's result. It exists for inspecting graphs from the shell; services
// embed the engine packages directly.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/text/language"

	"github.com/GodfreyEngineering/chainsolve/infrastructure/blocks"
	"github.com/GodfreyEngineering/chainsolve/internal/application"
	"github.com/GodfreyEngineering/chainsolve/internal/domain"
)

func main() {
	var (
		graphPath = flag.String("graph", "", "Path to the YAML graph document")
		locale    = flag.String("locale", "", "BCP 47 tag for localized number formatting (default: locale-neutral)")
		nodeID    = flag.String("node", "", "Print only this node's result")
		asCSV     = flag.Bool("csv", false, "With -node: print a table result as CSV")
	)
	flag.Parse()

	if *graphPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	loader, err := application.NewGraphLoader()
	if err != nil {
		log.Fatalf("Failed to initialize loader: %v", err)
	}

	graph, err := loader.LoadFromFile(*graphPath)
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}

	registry := application.NewBlockRegistry()
	if err := blocks.RegisterBuiltins(registry); err != nil {
		log.Fatalf("Failed to register blocks: %v", err)
	}

	evaluator, err := application.NewEvaluator(registry)
	if err != nil {
		log.Fatalf("Failed to initialize evaluator: %v", err)
	}

	results := evaluator.Evaluate(graph.Nodes, graph.Edges, graph.Refs)

	format := domain.FormatValueNeutral
	if *locale != "" {
		tag, err := language.Parse(*locale)
		if err != nil {
			log.Fatalf("Invalid locale %q: %v", *locale, err)
		}
		format = func(v domain.Value) string { return domain.FormatValue(v, tag) }
	}

	if *nodeID != "" {
		v, ok := results.Value(*nodeID)
		if !ok {
			log.Fatalf("Node %q has no result (unknown, or inside a cycle)", *nodeID)
		}
		if *asCSV {
			csv, ok := domain.TableCSV(v)
			if !ok {
				log.Fatalf("Node %q did not produce a table", *nodeID)
			}
			fmt.Print(csv)
			return
		}
		fmt.Println(format(v))
		return
	}

	for _, id := range results.NodeIDs() {
		v, _ := results.Value(id)
		fmt.Printf("%s: %s\n", id, format(v))
	}
}
