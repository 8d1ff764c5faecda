package write

import (
	"fmt"
	"strings"

	"github.com/ValentinKolb/dWrite/lib/table"
	"github.com/spf13/cobra"
)

var (
	putCmd = &cobra.Command{
		Use:   "put [attr=value ...]",
		Short: "Buffers a put for a row and flushes the buffer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := parseItem(args)
			if err != nil {
				return err
			}
			if err := writer.Put(item); err != nil {
				return err
			}
			if err := writer.Close(); err != nil {
				return err
			}
			fmt.Println("put successfully")
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [keyattr=value ...]",
		Short: "Buffers a delete for a row key and flushes the buffer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseItem(args)
			if err != nil {
				return err
			}
			if err := writer.Delete(key); err != nil {
				return err
			}
			if err := writer.Close(); err != nil {
				return err
			}
			fmt.Println("delete successfully")
			return nil
		},
	}
)

// parseItem converts attr=value arguments into an Item, preserving the
// argument order
func parseItem(args []string) (table.Item, error) {
	item := make(table.Item, 0, len(args))
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid attribute %q, expected attr=value", arg)
		}
		item = append(item, table.Field{Name: name, Value: []byte(value)})
	}
	return item, nil
}
