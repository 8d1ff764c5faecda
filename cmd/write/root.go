package write

import (
	"github.com/ValentinKolb/dWrite/cmd/util"
	"github.com/ValentinKolb/dWrite/lib/batcher"
	"github.com/ValentinKolb/dWrite/rpc/client"
	"github.com/ValentinKolb/dWrite/rpc/common"
	"github.com/spf13/cobra"
)

var (
	writer      batcher.IBatchWriter
	bulkBackend batcher.IBulkBackend

	// WriteCommands represents the write command group
	WriteCommands = &cobra.Command{
		Use:               "write",
		Short:             "Perform buffered write operations against a table store",
		PersistentPreRunE: setupWriter,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC and writer flags to the write command
	util.SetupRPCClientFlags(WriteCommands)
	util.SetupWriterFlags(WriteCommands)

	// Set default shard ID for table store operations
	WriteCommands.PersistentFlags().Int("shard", 100, util.WrapString("ID of the shard to connect to"))

	// Add subcommands
	WriteCommands.AddCommand(putCmd)
	WriteCommands.AddCommand(delCmd)
	WriteCommands.AddCommand(loadCmd)
	WriteCommands.AddCommand(perfTestCmd)
}

// setupWriter initializes the RPC backend and the batch writer
func setupWriter(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Get client configuration components
	config := util.GetClientConfig()
	shardId := util.GetShardID()

	// Install the log format and level before anything logs
	common.InitLoggers(config.LogLevel)

	// Get serializer and transport
	s, err := util.GetSerializer()
	if err != nil {
		return err
	}

	t, err := util.GetTransport()
	if err != nil {
		return err
	}

	// Create the RPC bulk write backend
	bulkBackend, err = client.NewRPCBackend(
		shardId,
		*config,
		t,
		s,
	)
	if err != nil {
		return err
	}

	// Create the batch writer on top of the backend
	target, writerConfig, err := util.GetWriterConfig()
	if err != nil {
		return err
	}
	writer, err = batcher.NewBatchWriter(target, bulkBackend, writerConfig)

	return err
}
