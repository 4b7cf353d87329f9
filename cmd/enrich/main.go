package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/smartecommerce/insight-api/pkg/ai"
	"github.com/smartecommerce/insight-api/pkg/models"
)

// enrichInput is the combined stdin payload when no file flags are given.
type enrichInput struct {
	Product models.ProductRecord `json:"product"`
	Store   models.StoreRecord   `json:"store"`
}

func main() {
	productPath := flag.String("product", "", "path to product JSON (reads {product, store} from stdin when omitted)")
	storePath := flag.String("store", "", "path to store JSON")
	timeout := flag.Duration("timeout", 60*time.Second, "overall timeout for the enrichment call")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	input, err := readInput(*productPath, *storePath)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	client, err := ai.NewClient(ai.ConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	enricher := ai.NewEnricher(client)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := enricher.Enrich(ctx, input.Product, input.Store)
	if err != nil {
		log.Fatalf("Enrichment failed: %v", err)
	}

	report := ai.NewReport(input.Product, input.Store, result)
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}

	fmt.Println(string(out))
}

func readInput(productPath, storePath string) (*enrichInput, error) {
	if productPath == "" && storePath == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		var input enrichInput
		if err := json.Unmarshal(raw, &input); err != nil {
			return nil, fmt.Errorf("parsing stdin JSON: %w", err)
		}
		return &input, nil
	}

	if productPath == "" || storePath == "" {
		return nil, fmt.Errorf("-product and -store must be given together")
	}

	var input enrichInput
	if err := readJSONFile(productPath, &input.Product); err != nil {
		return nil, err
	}
	if err := readJSONFile(storePath, &input.Store); err != nil {
		return nil, err
	}
	return &input, nil
}

func readJSONFile(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
