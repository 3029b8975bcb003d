package framework

import (
	"fmt"
	"io"
	"strings"
)

// Outcome is the final state of a single test.
type Outcome int

const (
	// Passed means the test ran to completion without any errors.
	Passed Outcome = iota
	// Failed means an assertion in the test did not hold.
	Failed
	// Errored means the test could not be set up, so its assertions were never checked.
	Errored
	// Skipped means the test was not run.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "PASSED"
	case Failed:
		return "FAILED"
	case Errored:
		return "ERROR"
	case Skipped:
		return "SKIPPED"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Errors   []TestResult
}

type TestResult struct {
	TestID  TestID
	Outcome Outcome
	Errors  []error
}

func (r Results) OK() bool {
	return len(r.Failures) == 0 && len(r.Errors) == 0
}

// Count returns the number of recorded tests with the given outcome.
func (r Results) Count(outcome Outcome) int {
	n := 0
	for _, t := range r.Tests {
		if t.Outcome == outcome {
			n++
		}
	}
	return n
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// SetupError is reported for a test whose preconditions could not be established, for
// instance because a fixture request to the service did not succeed.
type SetupError struct {
	Err error
}

func (e SetupError) Error() string {
	return fmt.Sprintf("setup failed: %s", e.Err)
}

func (e SetupError) Unwrap() error {
	return e.Err
}

// PrintResults writes a summary of the test run, followed by the identifiers of any tests that
// failed or errored.
func PrintResults(dest io.Writer, results Results) {
	fmt.Fprintf(dest, "%d passed, %d failed, %d errors, %d skipped\n",
		results.Count(Passed),
		len(results.Failures),
		len(results.Errors),
		results.Count(Skipped),
	)
	if len(results.Failures) > 0 {
		fmt.Fprintln(dest, "Failed tests:")
		for _, f := range results.Failures {
			fmt.Fprintf(dest, "  %s\n", f.TestID)
		}
	}
	if len(results.Errors) > 0 {
		fmt.Fprintln(dest, "Tests with setup errors:")
		for _, e := range results.Errors {
			fmt.Fprintf(dest, "  %s\n", e.TestID)
		}
	}
}
