package storetests

import (
	"github.com/storeqa/store-contract-tests/framework"
	"github.com/storeqa/store-contract-tests/storeapi"
)

const (
	// DefaultOrderID is the ID of the order that the tests place and look up.
	DefaultOrderID int64 = 1
	// DefaultMissingOrderID is an ID that is assumed never to exist on the service.
	DefaultMissingOrderID int64 = 9999
	// NotFoundMessage is the exact body text the service returns for an unknown order.
	NotFoundMessage = "Order not found"
)

// Config contains the parameters of a test run.
type Config struct {
	// Client is used for all requests. Each test gets a copy that logs to the test's debug output.
	Client *storeapi.Client
	// OrderID is the ID used in order payloads. Zero means DefaultOrderID.
	OrderID int64
	// MissingOrderID is the ID used to look up an order that does not exist. Zero means
	// DefaultMissingOrderID.
	MissingOrderID int64
}

func (c Config) orderID() int64 {
	if c.OrderID == 0 {
		return DefaultOrderID
	}
	return c.OrderID
}

func (c Config) missingOrderID() int64 {
	if c.MissingOrderID == 0 {
		return DefaultMissingOrderID
	}
	return c.MissingOrderID
}

// T represents a test or subtest in our Store API test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner, with debug logging provided by the framework package. To make
// test assertions, use the assert and require packages, passing the *T as if it were a
// *testing.T.
//
// Every T has its own copy of the Store API client whose requests and responses are written to
// the test's debug output.
type T struct {
	context *framework.Context
	config  Config
	client  *storeapi.Client
}

func newTestScope(context *framework.Context, config Config) *T {
	return &T{
		context: context,
		config:  config,
		client:  config.Client.WithLogger(context.DebugLogger()),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Abort immediately ends the test with a setup error. Fixtures call this when the state a test
// depends on could not be created, so that the test is reported as an error and not as a
// failed assertion.
func (t *T) Abort(err error) {
	t.context.Abort(err)
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.config))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Step marks the start of a named step of the test in its debug output.
func (t *T) Step(description string) {
	t.context.Debug("STEP: %s", description)
}

// Client returns the Store API client for this test.
func (t *T) Client() *storeapi.Client {
	return t.client
}

// OrderID returns the ID to use for orders placed by this test.
func (t *T) OrderID() int64 {
	return t.config.orderID()
}

// MissingOrderID returns an ID that is expected not to exist on the service.
func (t *T) MissingOrderID() int64 {
	return t.config.missingOrderID()
}
