// Package storetests contains the Store API contract tests themselves and their supporting API.
//
// Test harness infrastructure that is not specific to the Store API, such as test contexts,
// filtering and result reporting, is in the lower-level framework package. The HTTP calls are
// made through the storeapi package.
package storetests
