package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/buildmate/quote-service/internal/adapter/event"
	"github.com/buildmate/quote-service/internal/adapter/storage"
	"github.com/buildmate/quote-service/internal/core/domain"
	"github.com/buildmate/quote-service/internal/core/pdf"
	"github.com/buildmate/quote-service/internal/core/service"
)

// Drives the full validate-compute-render pipeline in-process against
// the built-in catalog and reports throughput for a single instance.
const (
	totalRequests = 500
	concurrency   = 20
)

func main() {
	ctx := context.Background()
	logger := zerolog.New(os.Stdout).Level(zerolog.WarnLevel)

	catalog := storage.NewMemoryCatalog(domain.DefaultCatalogData())
	svc := service.NewQuoteService(catalog, storage.NewMemorySequence(), event.NoopPublisher{}, logger)
	renderer := pdf.NewRenderer(os.Getenv("QUOTE_FONT_PATH"))

	jobs := make(chan int, totalRequests)
	for i := 0; i < totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	var successCount atomic.Int64
	var failCount atomic.Int64
	var pdfBytes atomic.Int64

	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				result, err := svc.CreateQuote(ctx, sampleRequest())
				if err != nil {
					failCount.Add(1)
					continue
				}
				data, err := renderer.Render(result)
				if err != nil {
					failCount.Add(1)
					continue
				}
				successCount.Add(1)
				pdfBytes.Add(int64(len(data)))
			}
		}()
	}
	wg.Wait()

	elapsed := time.Since(start)
	success := successCount.Load()
	if success == 0 {
		log.Fatal("no successful quotes")
	}

	fmt.Println("=== Quote Pipeline Stress Test ===")
	fmt.Printf("Requests:    %d (concurrency %d)\n", totalRequests, concurrency)
	fmt.Printf("Success:     %d\n", success)
	fmt.Printf("Failed:      %d\n", failCount.Load())
	fmt.Printf("Elapsed:     %v\n", elapsed)
	fmt.Printf("Throughput:  %.1f quotes/sec\n", float64(success)/elapsed.Seconds())
	fmt.Printf("Avg PDF:     %d bytes\n", pdfBytes.Load()/success)
}

func sampleRequest() *domain.QuoteRequest {
	return &domain.QuoteRequest{
		SellerCompany:   "Shenzhen Buildmate Co., Ltd.",
		BuyerCompany:    "Acme Imports LLC",
		Incoterm:        "FOB",
		Currency:        "USD",
		PaymentMethodID: "tt-advance",
		BankID:          "icbc-shenzhen",
		ContainerID:     domain.Container20GP,
		Freight:         150,
		QuoteDate:       time.Now().Format(domain.DateLayout),
		ValidUntil:      time.Now().AddDate(0, 1, 0).Format(domain.DateLayout),
		Remark:          "含出口包装，不含目的港费用。",
		Item: domain.QuoteItem{
			ProductID: "pvc-panel",
			Quantity:  500,
			UnitPrice: 6.0,
		},
	}
}
