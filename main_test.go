package main

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/storeqa/store-contract-tests/framework"
	"github.com/storeqa/store-contract-tests/mockstore"
	"github.com/storeqa/store-contract-tests/storetests"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestRunPassesAgainstCorrectService(t *testing.T) {
	server := httptest.NewServer(mockstore.New(mockstore.Faults{}))
	defer server.Close()

	assert.Equal(t, 0, run([]string{"store-contract-tests", "-url", server.URL + mockstore.BasePath, "-no-color"}))
}

func TestRunFailsWhenATestFails(t *testing.T) {
	server := httptest.NewServer(mockstore.New(mockstore.Faults{IgnoreDelete: true}))
	defer server.Close()

	assert.Equal(t, 1, run([]string{"store-contract-tests", "-url", server.URL + mockstore.BasePath, "-debug"}))
}

func TestRunSucceedsWhenFailingTestIsSkipped(t *testing.T) {
	server := httptest.NewServer(mockstore.New(mockstore.Faults{IgnoreDelete: true}))
	defer server.Close()

	assert.Equal(t, 0, run([]string{"store-contract-tests", "-url", server.URL + mockstore.BasePath,
		"-skip", "delete"}))
}

func TestRunFailsWhenServiceIsUnreachable(t *testing.T) {
	server := httptest.NewServer(mockstore.New(mockstore.Faults{}))
	url := server.URL
	server.Close()

	assert.Equal(t, 1, run([]string{"store-contract-tests", "-url", url, "-connect-timeout", "200ms"}))
}

func TestReadParams(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"prog", "-run", "orders", "-skip", "delete", "-order-id", "5", "-timeout", "3s"}))
	assert.Equal(t, defaultStoreURL, p.storeURL)
	assert.Equal(t, int64(5), p.orderID)
	assert.Equal(t, storetests.DefaultMissingOrderID, p.missingOrderID)
	assert.Equal(t, "3s", p.timeout.String())
	assert.Equal(t, defaultConnectTimeout, p.connectTimeout)
	assert.True(t, p.filters.MustMatch.IsDefined())
	assert.True(t, p.filters.MustNotMatch.IsDefined())
}

func TestReadParamsRejectsBadInput(t *testing.T) {
	var p1 commandParams
	assert.False(t, p1.Read([]string{"prog", "-run", "("}))

	var p2 commandParams
	assert.False(t, p2.Read([]string{"prog", "-order-id", "7", "-missing-order-id", "7"}))

	var p3 commandParams
	assert.False(t, p3.Read([]string{"prog", "-url", ""}))

	var p4 commandParams
	assert.False(t, p4.Read([]string{"prog", "-order-id", "0", "-missing-order-id", "1"}))

	var p5 commandParams
	assert.False(t, p5.Read([]string{"prog", "-missing-order-id", "0"}))
}

func TestRerunCommand(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"prog", "-url", "http://localhost:8080/api/v3/store", "-order-id", "12"}))

	failed := []framework.TestResult{
		{TestID: framework.TestID{Path: []string{"orders", "delete order by id"}}},
	}
	assert.Equal(t,
		`./store-contract-tests -url http://localhost:8080/api/v3/store -order-id 12 -run '^orders$/^delete order by id$' -debug`,
		p.rerunCommand("./store-contract-tests", failed))
}

func TestRerunPatternSelectsOnlyThatTest(t *testing.T) {
	var filters framework.RegexFilters
	id := framework.TestID{Path: []string{"orders", "get order by id"}}
	require.NoError(t, filters.MustMatch.Set(exactTestPattern(id)))

	assert.True(t, filters.AsFilter(framework.TestID{Path: []string{"orders"}}))
	assert.True(t, filters.AsFilter(id))
	assert.False(t, filters.AsFilter(framework.TestID{Path: []string{"orders", "get nonexistent order"}}))
	assert.False(t, filters.AsFilter(framework.TestID{Path: []string{"inventory"}}))
}

func TestConsoleTestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Output: &buf, DebugOutputOnFailure: true}
	id := framework.TestID{Path: []string{"orders", "place an order"}}
	var debug framework.CapturingLogger
	debug.Printf("STEP: prepare the order payload")

	logger.TestStarted(id)
	logger.TestError(id, errors.New("first line\nsecond line"))
	logger.TestFinished(id, framework.Failed, debug.Output())
	logger.TestSkipped(framework.TestID{Path: []string{"inventory"}}, "excluded by filter parameters")

	out := buf.String()
	assert.Contains(t, out, "[orders/place an order]\n  first line\n  second line\n  FAILED: orders/place an order\n")
	assert.Contains(t, out, "    DEBUG [")
	assert.Contains(t, out, "] STEP: prepare the order payload\n")
	assert.Contains(t, out, "  SKIPPED: inventory (excluded by filter parameters)\n")
}

func TestConsoleTestLoggerHidesDebugOutputOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Output: &buf, DebugOutputOnFailure: true}
	var debug framework.CapturingLogger
	debug.Printf("quiet")

	logger.TestFinished(framework.TestID{Path: []string{"inventory", "get inventory"}}, framework.Passed, debug.Output())
	assert.Empty(t, buf.String())
}
