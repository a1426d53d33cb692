package tests

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/buildmate/quote-service/internal/adapter/event"
	"github.com/buildmate/quote-service/internal/adapter/storage"
	"github.com/buildmate/quote-service/internal/core/domain"
	"github.com/buildmate/quote-service/internal/core/pdf"
	"github.com/buildmate/quote-service/internal/core/service"
)

type testEnv struct {
	redis   *redis.Client
	service *service.QuoteService
	cleanup func()
}

func setupTestEnv(t *testing.T) *testEnv {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	catalog := storage.NewMemoryCatalog(domain.DefaultCatalogData())
	svc := service.NewQuoteService(catalog, storage.NewRedisSequence(rdb),
		event.NoopPublisher{}, zerolog.Nop())

	return &testEnv{
		redis:   rdb,
		service: svc,
		cleanup: func() { rdb.Close() },
	}
}

func quoteRequest(date string) *domain.QuoteRequest {
	return &domain.QuoteRequest{
		SellerCompany:   "Shenzhen Buildmate Co., Ltd.",
		BuyerCompany:    "Acme Imports LLC",
		Incoterm:        "FOB",
		Currency:        "USD",
		PaymentMethodID: "tt-advance",
		BankID:          "icbc-shenzhen",
		ContainerID:     domain.Container20GP,
		Freight:         150,
		QuoteDate:       date,
		ValidUntil:      "2031-12-31",
		Item: domain.QuoteItem{
			ProductID: "pvc-panel",
			Quantity:  200,
			UnitPrice: 6.0,
		},
	}
}

func TestIntegration_FullQuoteFlow(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	const day = "2031-01-15"

	// Setup: reset the daily counter
	env.redis.Del(ctx, "quote:seq:20310115")

	result, err := env.service.CreateQuote(ctx, quoteRequest(day))
	if err != nil {
		t.Fatalf("CreateQuote failed: %v", err)
	}
	if result.QuoteNumber != "Q-20310115-0001" {
		t.Errorf("expected Q-20310115-0001, got %q", result.QuoteNumber)
	}
	if result.Subtotal != 1200.00 || result.TotalAmount != 1350.00 {
		t.Errorf("unexpected totals: %v / %v", result.Subtotal, result.TotalAmount)
	}

	data, err := pdf.NewRenderer(os.Getenv("QUOTE_FONT_PATH")).Render(result)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(data) == 0 || string(data[:5]) != "%PDF-" {
		t.Error("render did not produce a PDF document")
	}

	// Cleanup
	env.redis.Del(ctx, "quote:seq:20310115")
}

func TestIntegration_ConcurrentQuoteNumbers(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	const (
		day   = "2031-02-01"
		total = 25
	)

	env.redis.Del(ctx, "quote:seq:20310201")

	var mu sync.Mutex
	numbers := make(map[string]bool)
	var wg sync.WaitGroup

	for i := 0; i < total; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := env.service.CreateQuote(ctx, quoteRequest(day))
			if err != nil {
				t.Errorf("CreateQuote failed: %v", err)
				return
			}
			mu.Lock()
			numbers[result.QuoteNumber] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(numbers) != total {
		t.Errorf("expected %d unique quote numbers, got %d", total, len(numbers))
	}
	if !numbers[fmt.Sprintf("Q-20310201-%04d", total)] {
		t.Errorf("expected sequence to reach %04d: %v", total, numbers)
	}

	env.redis.Del(ctx, "quote:seq:20310201")
}
