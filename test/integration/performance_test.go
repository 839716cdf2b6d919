package integration

import (
	"testing"
	"time"

	"github.com/iwvelando/homeloan-calculator/internal/config"
	"github.com/iwvelando/homeloan-calculator/pkg/loans"
	"github.com/iwvelando/homeloan-calculator/pkg/output"
	"github.com/iwvelando/homeloan-calculator/pkg/testutil"
	"go.uber.org/zap"
)

// TestPerformance times every supported term for the model house.
func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping performance test in short mode")
	}

	start := time.Now()
	conf, err := config.LoadConfiguration(exampleConfig)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	settings := conf.EngineSettings()
	loadTime := time.Since(start)

	calculator := loans.NewCalculator(zap.NewNop())
	start = time.Now()
	rows := 0
	for _, term := range []int{5, 10, 15, 20, 25, 30} {
		result, err := calculator.Calculate(testutil.ModelHouseRequest(term), settings)
		if err != nil {
			t.Fatalf("Calculate failed for %d years: %v", term, err)
		}
		rows += len(result.LoanAmortization.Schedule)
	}
	calculateTime := time.Since(start)

	t.Logf("Performance metrics:")
	t.Logf("  Load config: %v", loadTime)
	t.Logf("  Calculate all terms: %v", calculateTime)

	if rows != (5+10+15+20+25+30)*12 {
		t.Errorf("Expected %d loan rows in total, got %d", (5+10+15+20+25+30)*12, rows)
	}
	if total := loadTime + calculateTime; total > 10*time.Second {
		t.Errorf("Total processing time %v exceeds 10 second threshold", total)
	}
}

func BenchmarkCalculate(b *testing.B) {
	settings := loans.DefaultSettings()
	req := testutil.ModelHouseRequest(30)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := loans.CalculateCompleteLoanDetails(req, settings); err != nil {
			b.Fatalf("CalculateCompleteLoanDetails failed: %v", err)
		}
	}
}

func BenchmarkCsvString(b *testing.B) {
	result := testutil.MustCalculate(b, testutil.ModelHouseRequest(30))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := output.CsvString(result, false); err != nil {
			b.Fatalf("CsvString failed: %v", err)
		}
	}
}
