// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to the Store API.
//
// The general model is:
//
// 1. The test harness talks to a remote service over HTTP. Before any tests run, it waits
// for the service to become reachable (AwaitService).
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. A test can also be aborted with a setup error, which is reported
// separately from an assertion failure.
//
// 3. Tests are identified by a path of names, and can be selected or excluded by regular
// expressions matched against that path.
//
// The domain-specific code that knows what is being tested is responsible for sending the
// requests, and for providing a domain-specific test API on top of the test context.
package framework
