package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultsOK(t *testing.T) {
	assert.True(t, Results{}.OK())
	assert.False(t, Results{Failures: []TestResult{{}}}.OK())
	assert.False(t, Results{Errors: []TestResult{{}}}.OK())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "PASSED", Passed.String())
	assert.Equal(t, "FAILED", Failed.String())
	assert.Equal(t, "ERROR", Errored.String())
	assert.Equal(t, "SKIPPED", Skipped.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
}

func TestPrintResults(t *testing.T) {
	failed := TestResult{TestID: testID("orders", "get order by id"), Outcome: Failed}
	errored := TestResult{TestID: testID("orders", "delete order by id"), Outcome: Errored}
	results := Results{
		Tests: []TestResult{
			{TestID: testID("orders", "place an order"), Outcome: Passed},
			failed,
			errored,
			{TestID: testID("inventory"), Outcome: Skipped},
		},
		Failures: []TestResult{failed},
		Errors:   []TestResult{errored},
	}

	var buf bytes.Buffer
	PrintResults(&buf, results)
	assert.Equal(t,
		"1 passed, 1 failed, 1 errors, 1 skipped\n"+
			"Failed tests:\n"+
			"  orders/get order by id\n"+
			"Tests with setup errors:\n"+
			"  orders/delete order by id\n",
		buf.String())
}
