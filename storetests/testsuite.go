package storetests

import (
	"github.com/storeqa/store-contract-tests/framework"
)

// RunTestSuite runs every Store API test, one at a time, and returns the results.
func RunTestSuite(
	config Config,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, config)

		t.Run("orders", DoOrderTests)
		t.Run("inventory", DoInventoryTests)
	})
}
