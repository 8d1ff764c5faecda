package write

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ValentinKolb/dWrite/lib/table"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
)

var (
	loadCmd = &cobra.Command{
		Use:   "load [file]",
		Short: "Bulk-loads rows from a CSV file through the batch writer",
		Long:  "Bulk-loads rows from a CSV file. The header row defines the attribute names (in order); every following row becomes one put request. Use - to read from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE:  runLoad,
	}
)

func runLoad(_ *cobra.Command, args []string) error {
	// Open the input
	var input io.Reader
	if args[0] == "-" {
		input = os.Stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	reader := csv.NewReader(input)

	// The header row defines the attribute names
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading CSV header: %w", err)
	}

	// Per-put latency via a go-metrics timer
	timer := gometrics.NewTimer()

	rows := 0
	start := time.Now()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading CSV row %d: %w", rows+2, err)
		}

		item := make(table.Item, 0, len(header))
		for i, name := range header {
			item = append(item, table.Field{Name: name, Value: []byte(record[i])})
		}

		putStart := time.Now()
		if err := writer.Put(item); err != nil {
			return fmt.Errorf("row %d: %w", rows+2, err)
		}
		timer.UpdateSince(putStart)
		rows++
	}

	// Drain whatever is still buffered
	if err := writer.Close(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("loaded %d rows in %s (%.0f rows/sec)\n", rows, elapsed.Round(time.Millisecond), float64(rows)/elapsed.Seconds())
	fmt.Printf("put latency: mean=%s p95=%s max=%s\n",
		time.Duration(timer.Mean()).Round(time.Microsecond),
		time.Duration(timer.Percentile(0.95)).Round(time.Microsecond),
		time.Duration(timer.Max()).Round(time.Microsecond))

	return nil
}
