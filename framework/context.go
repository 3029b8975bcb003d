package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the state of a single test or group of tests. It plays the role that *testing.T
// plays in Go tests, and it implements the TestingT interface of testify's assert and require
// packages through Errorf and FailNow.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	errored     bool
	skipped     bool
	skipReason  string
	hasSubtests bool
	errors      []error
}

// Run executes a tree of tests, starting from a root context with an empty identifier, and
// returns the accumulated results. Tests are run sequentially in the order the action calls
// Context.Run.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				c.record()
				return
			}
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if !c.errored {
				c.failed = true
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		c.record()
	}()

	action(c)
}

func (c *Context) outcome() Outcome {
	switch {
	case c.skipped:
		return Skipped
	case c.errored:
		return Errored
	case c.failed:
		return Failed
	default:
		return Passed
	}
}

// record adds this context to the results. The root context, and any context that only groups
// subtests, is recorded only if something went wrong in it directly.
func (c *Context) record() {
	outcome := c.outcome()
	if (c.hasSubtests || len(c.id.Path) == 0) && outcome == Passed {
		return
	}
	result := TestResult{TestID: c.id, Outcome: outcome, Errors: c.errors}
	c.env.results.Tests = append(c.env.results.Tests, result)
	switch outcome {
	case Failed:
		c.env.results.Failures = append(c.env.results.Failures, result)
	case Errored:
		c.env.results.Errors = append(c.env.results.Errors, result)
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest with the given name. If the filter excludes the subtest, it is recorded
// as skipped without being run.
func (c *Context) Run(name string, action func(*Context)) {
	c.hasSubtests = true
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	if c.env.filter != nil && !c.env.filter(id) {
		reason := "excluded by filter parameters"
		c.env.testLogger.TestSkipped(id, reason)
		c.env.results.Tests = append(c.env.results.Tests, TestResult{TestID: id, Outcome: Skipped})
		return
	}
	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.outcome(), c1.debugLogger.Output())
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

func (c *Context) FailNow() {
	panic(c)
}

// Abort stops the test immediately and reports it as a setup error rather than as a failed
// assertion.
func (c *Context) Abort(err error) {
	c.errored = true
	setupErr := SetupError{Err: err}
	c.errors = append(c.errors, setupErr)
	c.env.testLogger.TestError(c.id, setupErr)
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
