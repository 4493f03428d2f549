package cmd

import (
	"context"
	"log"
	"os"

	"github.com/atlasledger/go-bank-recon/cmd/setup"
	"github.com/atlasledger/go-bank-recon/internal/common/graceful"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/deliveries/consumer"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "consumer",
	Short: "Consumer is a consumer application for handling reconciliation batch messages",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runConsumerCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runConsumerCmdName)
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run consumer",
		Long:    `Run consumer for handling reconciliation messages, available consumer type: recon_batch`,
		Example: "consumer run -n={consumer-type-name}",
		Run:     runConsumer,
	}
	runConsumerCmdName = "name"
)

func runConsumer(ccmd *cobra.Command, args []string) {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	consumerName, _ := ccmd.Flags().GetString(runConsumerCmdName)
	xlog.Infof(ctx, "initializing consumer: %s", consumerName)

	// Step 1: Initialize setup
	s, stopperContract, err := setup.Init("consumer-" + consumerName)
	if err != nil {
		log.Fatalf("failed to setup app: %v", err)
	}

	// Step 2: Create Kafka consumer
	consumerProcess, consumerStopper, err := consumer.NewKafkaConsumer(ctx, consumerName, s.Config, s.Service, s)
	if err != nil {
		// Only stop setup resources, not consumer resources (they don't exist yet)
		xlog.Fatalf(ctx, "failed to setup consumer: %v", err)
	}

	// Step 3: Create liveness HTTP server
	healthCheckProcess := consumer.NewHTTPServer(ctx, s.Config)

	// Step 4: Collect all starters and stoppers
	starters = append(starters, consumerProcess.Start(), healthCheckProcess.Start())
	// Since graceful.StopProcess() calls slices.Reverse(), we append in OPPOSITE order:
	stoppers = append(stoppers, stopperContract...)        // Added FIRST → Will stop LAST (Kafka producers, DB, Cache)
	stoppers = append(stoppers, consumerStopper...)        // Added 2nd → Will stop 3rd (Consumer resources)
	stoppers = append(stoppers, consumerProcess.Stop())    // Added 3rd → Will stop 2nd (Kafka consumer)
	stoppers = append(stoppers, healthCheckProcess.Stop()) // Added LAST → Will stop FIRST (Liveness HTTP)

	xlog.Info(ctx, "starting consumer services in background...")
	graceful.StartProcessAtBackground(starters...)

	xlog.Infof(ctx, "consumer %s started, waiting for shutdown signal...", consumerName)

	// Block until shutdown signal is received
	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)

	xlog.Infof(ctx, "consumer %s stopped successfully!", consumerName)
}
