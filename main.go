package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/storeqa/store-contract-tests/framework"
	"github.com/storeqa/store-contract-tests/storeapi"
	"github.com/storeqa/store-contract-tests/storetests"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

const defaultStoreURL = "http://5.181.109.28:9090/api/v3/store"
const defaultConnectTimeout = time.Second * 10

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}
	if params.noColor {
		color.NoColor = true
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = newDebugLogger()
	}

	httpClient := &http.Client{Timeout: params.timeout}
	client := storeapi.NewClient(params.storeURL, httpClient, nil)

	if _, err := framework.AwaitService(
		httpClient,
		client.InventoryURL(),
		params.connectTimeout,
		os.Stdout,
		mainDebugLogger,
	); err != nil {
		fmt.Fprintf(os.Stderr, "Store service error: %s\n", err)
		return 1
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	config := storetests.Config{
		Client:         client,
		OrderID:        params.orderID,
		MissingOrderID: params.missingOrderID,
	}

	results := storetests.RunTestSuite(config, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		notPassed := append(append([]framework.TestResult(nil), results.Failures...), results.Errors...)
		fmt.Println()
		fmt.Println("To run the failed tests again:")
		fmt.Printf("  %s\n", params.rerunCommand(args[0], notPassed))
		return 1
	}
	return 0
}

func newDebugLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return logger
}
