package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loggedEvent struct {
	kind string
	id   string
	info string
}

type recordingTestLogger struct {
	events []loggedEvent
}

func (l *recordingTestLogger) TestStarted(id TestID) {
	l.events = append(l.events, loggedEvent{"started", id.String(), ""})
}

func (l *recordingTestLogger) TestError(id TestID, err error) {
	l.events = append(l.events, loggedEvent{"error", id.String(), err.Error()})
}

func (l *recordingTestLogger) TestFinished(id TestID, outcome Outcome, _ CapturedOutput) {
	l.events = append(l.events, loggedEvent{"finished", id.String(), outcome.String()})
}

func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.events = append(l.events, loggedEvent{"skipped", id.String(), reason})
}

func outcomesOf(results Results) map[string]Outcome {
	ret := make(map[string]Outcome)
	for _, r := range results.Tests {
		ret[r.TestID.String()] = r.Outcome
	}
	return ret
}

func TestPassingTests(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Run("b", func(c *Context) {})
			c.Run("c", func(c *Context) {})
		})
	})
	assert.True(t, results.OK())
	assert.Equal(t, map[string]Outcome{"a/b": Passed, "a/c": Passed}, outcomesOf(results))
}

func TestAssertionFailureIsRecorded(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			assert.Equal(c, 1, 2, "numbers differ")
			c.Debug("still running")
		})
		c.Run("b", func(c *Context) {})
	})
	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "a", results.Failures[0].TestID.String())
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "numbers differ")
	assert.Equal(t, Passed, outcomesOf(results)["b"])
}

func TestRequireStopsTest(t *testing.T) {
	reached := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			require.True(c, false)
			reached = true
		})
	})
	assert.False(t, reached)
	assert.Equal(t, map[string]Outcome{"a": Failed}, outcomesOf(results))
}

func TestFailNowWithoutMessage(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) { c.FailNow() })
	})
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "test failed with no failure message", results.Failures[0].Errors[0].Error())
}

func TestPanicIsRecordedAsFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) { panic("boom") })
	})
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: boom")
}

func TestAbortIsRecordedAsSetupError(t *testing.T) {
	cause := errors.New("fixture was not created")
	reached := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Abort(cause)
			reached = true
		})
	})
	assert.False(t, reached)
	assert.False(t, results.OK())
	assert.Empty(t, results.Failures)
	require.Len(t, results.Errors, 1)
	assert.Equal(t, Errored, results.Errors[0].Outcome)
	var setupErr SetupError
	require.True(t, errors.As(results.Errors[0].Errors[0], &setupErr))
	assert.True(t, errors.Is(setupErr, cause))
	assert.Equal(t, "setup failed: fixture was not created", setupErr.Error())
}

func TestSkip(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) { c.SkipWithReason("not today") })
	})
	assert.True(t, results.OK())
	assert.Equal(t, map[string]Outcome{"a": Skipped}, outcomesOf(results))
	assert.Equal(t, []loggedEvent{
		{"started", "a", ""},
		{"skipped", "a", "not today"},
	}, logger.events)
}

func TestFilterExcludesTests(t *testing.T) {
	logger := &recordingTestLogger{}
	ran := false
	filter := func(id TestID) bool { return id.String() != "a/b" }
	results := Run(filter, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Run("b", func(c *Context) { ran = true })
		})
	})
	assert.False(t, ran)
	assert.Equal(t, map[string]Outcome{"a/b": Skipped}, outcomesOf(results))
	assert.Equal(t, []loggedEvent{
		{"started", "a", ""},
		{"skipped", "a/b", "excluded by filter parameters"},
		{"finished", "a", "PASSED"},
	}, logger.events)
}

func TestGroupFailureIsRecorded(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Run("b", func(c *Context) {})
			c.Errorf("group-level problem")
		})
	})
	assert.Equal(t, map[string]Outcome{"a/b": Passed, "a": Failed}, outcomesOf(results))
}

func TestSiblingPathsAreIndependent(t *testing.T) {
	var ids []string
	Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Run("b", func(c *Context) { ids = append(ids, c.ID().String()) })
			c.Run("c", func(c *Context) { ids = append(ids, c.ID().String()) })
		})
	})
	assert.Equal(t, []string{"a/b", "a/c"}, ids)
}

func TestDebugOutputIsPassedToLogger(t *testing.T) {
	var output CapturedOutput
	logger := &capturingTestLogger{onFinish: func(o CapturedOutput) { output = o }}
	Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Debug("hello %s", "there")
			c.DebugLogger().Printf("second")
		})
	})
	require.Len(t, output, 2)
	assert.Equal(t, "hello there", output[0].Message)
	assert.Equal(t, "second", output[1].Message)
}

type capturingTestLogger struct {
	nullTestLogger
	onFinish func(CapturedOutput)
}

func (l *capturingTestLogger) TestFinished(_ TestID, _ Outcome, output CapturedOutput) {
	l.onFinish(output)
}

func TestPanicOutsideOfSubtestIsRecorded(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		panic("no subtests")
	})
	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "", results.Failures[0].TestID.String())
}
