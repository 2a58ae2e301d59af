package main

import (
	"k8s.io/klog/v2"

	"github.com/BinSquare/inferbench/cmd/inferbench/helper"
)

// @title			InferBench API
// @version			1.0.0
// @description		Crowdsourced LLM inference benchmark leaderboard: submissions, hardware and model rankings, and value-for-money scores.
func main() {
	// Initialize configuration
	configInit := helper.NewConfigInitializer()
	backendConfig := configInit.GetBackendConfig()

	// Load debug environment if needed
	if err := configInit.LoadDebugEnvironment(); err != nil {
		klog.Fatalf("Failed to load env: %s", err)
	}

	// Migrate and seed the database before serving traffic
	if err := configInit.InitializeDatabase(); err != nil {
		klog.Fatalf("Failed to migrate database: %s", err)
	}

	// Start HTTP server
	serverRunner := helper.NewServerRunner(backendConfig)
	serverRunner.StartServer()
}
