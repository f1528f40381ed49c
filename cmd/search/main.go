// Command search is a terminal version of the storefront search box. Each
// input line replaces the search text, as if typed; lines starting with ':'
// change the filters.
//
//	:category lighting
//	:sort price-low
//	:quit
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/elegant-tiles/storefront/internal/catalog"
	"github.com/elegant-tiles/storefront/internal/config"
	"github.com/elegant-tiles/storefront/internal/domain/product"
	"github.com/elegant-tiles/storefront/internal/logging"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	logger := logging.Setup(cfg.LogMode, cfg.LogFile).Named("search")
	defer logger.Sync()

	store, err := catalog.LoadSeed()
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}

	ls := catalog.NewLiveSearch(store, cfg.SearchDebounce, printResult)
	defer ls.Close()

	scanner := bufio.NewScanner(os.Stdin)
input:
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ":") {
			ls.Type(line)
			continue
		}

		cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
		switch cmd {
		case "category", "c":
			ls.SetCategory(product.Category(strings.TrimSpace(arg)))
		case "sort", "s":
			ls.SetSort(catalog.ParseSortKey(strings.TrimSpace(arg)))
		case "quit", "q":
			break input
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("failed to read input", zap.Error(err))
	}

	// Piped input ends faster than the debounce delay; show the last query.
	ls.Flush()
}

func printResult(r catalog.Result) {
	category := r.Options.Category
	if category == "" {
		category = product.CategoryAll
	}
	fmt.Printf("\n%d result(s) for %q in %s, sorted by %s\n",
		len(r.Products), r.Options.Search, category.DisplayName(), catalog.ParseSortKey(string(r.Options.Sort)))
	for _, p := range r.Products {
		stock := ""
		if !p.InStock {
			stock = " (out of stock)"
		}
		fmt.Printf("  %-4s %-36s KES %10s  %.1f★%s\n", p.ID, p.Name, p.Price.StringFixed(0), p.Rating, stock)
	}
}
