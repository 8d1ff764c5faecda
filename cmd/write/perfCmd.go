package write

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ValentinKolb/dWrite/cmd/util"
	"github.com/ValentinKolb/dWrite/lib/batcher"
	"github.com/ValentinKolb/dWrite/lib/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for bulk writes",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfValueSizeB = 256
	perfKeySpread  = 100
	perfSkip       = make([]string, 0)
)

func init() {
	// add flags
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. put,bulk)"))
	key = "value-size"
	perfTestCmd.Flags().Int(key, 256, util.WrapString("Size of the payload attribute per row (in bytes)"))
	key = "keys"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How many different row keys to use for the tests"))
	key = "csv"
	perfTestCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfValueSizeB = viper.GetInt("value-size")
	perfKeySpread = viper.GetInt("keys")
	if skip := viper.GetString("skip"); skip != "" {
		perfSkip = strings.Split(skip, ",")
	}

	return nil
}

func shouldSkip(name string) bool {
	for _, s := range perfSkip {
		if s == name {
			return true
		}
	}
	return false
}

// perfItem builds a row with a spread-out key and a payload of the
// configured size
func perfItem(i int) table.Item {
	return table.Item{
		{Name: "pk", Value: []byte(fmt.Sprintf("__perf-%d", i%perfKeySpread))},
		{Name: "payload", Value: make([]byte, perfValueSizeB)},
	}
}

func runPerf(_ *cobra.Command, _ []string) error {

	fmt.Println("Performance testing tool for dWrite")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(util.GetClientConfig().String())
	fmt.Printf("Value size: %d bytes, key spread: %d\n", perfValueSizeB, perfKeySpread)
	fmt.Println()

	fmt.Println("starting tests...")

	target, writerConfig, err := util.GetWriterConfig()
	if err != nil {
		return err
	}

	// Create results map
	results := make(map[string]testing.BenchmarkResult)

	// Buffered put throughput: every put goes through dedup and the
	// batching state machine; flushes happen at the configured amount
	if !shouldSkip("put") {
		putResult := testing.Benchmark(func(b *testing.B) {
			w, err := batcher.NewBatchWriter(target, bulkBackend, writerConfig)
			if err != nil {
				b.Fatalf("creating writer: %v", err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := w.Put(perfItem(i)); err != nil {
					b.Fatalf("put: %v", err)
				}
			}
			if err := w.Close(); err != nil {
				b.Fatalf("close: %v", err)
			}
		})
		results["put"] = putResult
	}
	printResult("put", results["put"])

	// Raw bulk write throughput: one full batch per iteration, no buffering
	if !shouldSkip("bulk") {
		bulkResult := testing.Benchmark(func(b *testing.B) {
			batch := make([]table.WriteRequest, batcher.DefaultFlushAmount)
			for i := range batch {
				batch[i] = table.NewPutRequest(perfItem(i))
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := bulkBackend.BulkWrite(target, batch); err != nil {
					b.Fatalf("bulk write: %v", err)
				}
			}
		})
		results["bulk"] = bulkResult
	}
	printResult("bulk", results["bulk"])

	// Optionally save the results as CSV
	if path := viper.GetString("csv"); path != "" {
		if err := saveResults(path, results); err != nil {
			return err
		}
		fmt.Printf("results saved to %s\n", path)
	}

	return nil
}

// printResult prints a single benchmark result in a compact form
func printResult(name string, r testing.BenchmarkResult) {
	if r.N == 0 {
		fmt.Printf("%-8s skipped\n", name)
		return
	}
	opsPerSec := float64(r.N) / r.T.Seconds()
	fmt.Printf("%-8s %d ops in %s (%.0f ops/sec, %s/op)\n",
		name, r.N, r.T.Round(time.Millisecond), opsPerSec, time.Duration(r.NsPerOp()))
}

// saveResults writes all benchmark results to a CSV file
func saveResults(path string, results map[string]testing.BenchmarkResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"benchmark", "ops", "ns_per_op", "ops_per_sec"}); err != nil {
		return err
	}
	for name, r := range results {
		if r.N == 0 {
			continue
		}
		opsPerSec := float64(r.N) / r.T.Seconds()
		if err := w.Write([]string{
			name,
			strconv.Itoa(r.N),
			strconv.FormatInt(r.NsPerOp(), 10),
			strconv.FormatFloat(opsPerSec, 'f', 0, 64),
		}); err != nil {
			return err
		}
	}
	return nil
}
