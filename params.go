package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/storeqa/store-contract-tests/framework"
	"github.com/storeqa/store-contract-tests/storetests"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	storeURL       string
	filters        framework.RegexFilters
	orderID        int64
	missingOrderID int64
	timeout        time.Duration
	connectTimeout time.Duration
	debug          bool
	debugAll       bool
	noColor        bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.storeURL, "url", defaultStoreURL, "base URL of the Store API")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.Int64Var(&c.orderID, "order-id", storetests.DefaultOrderID, "ID of the order that tests place")
	fs.Int64Var(&c.missingOrderID, "missing-order-id", storetests.DefaultMissingOrderID,
		"ID of an order that does not exist")
	fs.DurationVar(&c.timeout, "timeout", 0, "timeout for each request (0 means no timeout)")
	fs.DurationVar(&c.connectTimeout, "connect-timeout", defaultConnectTimeout,
		"how long to wait for the service to respond before running tests")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.storeURL == "" {
		fmt.Fprintln(os.Stderr, "-url must not be empty")
		fs.Usage()
		return false
	}
	if c.orderID == 0 || c.missingOrderID == 0 {
		fmt.Fprintln(os.Stderr, "-order-id and -missing-order-id must not be 0")
		fs.Usage()
		return false
	}
	if c.orderID == c.missingOrderID {
		fmt.Fprintln(os.Stderr, "-order-id and -missing-order-id must be different")
		fs.Usage()
		return false
	}
	return true
}

// rerunCommand builds a command line that runs only the given tests again with the same
// service parameters.
func (c *commandParams) rerunCommand(program string, tests []framework.TestResult) string {
	var b commandBuilder
	b.add(program, "-url", c.storeURL)
	if c.orderID != storetests.DefaultOrderID {
		b.add("-order-id", fmt.Sprint(c.orderID))
	}
	if c.missingOrderID != storetests.DefaultMissingOrderID {
		b.add("-missing-order-id", fmt.Sprint(c.missingOrderID))
	}
	if c.timeout != 0 {
		b.add("-timeout", c.timeout.String())
	}
	for _, t := range tests {
		b.add("-run", exactTestPattern(t.TestID))
	}
	b.add("-debug")
	return b.String()
}

func exactTestPattern(id framework.TestID) string {
	elements := make([]string, 0, len(id.Path))
	for _, name := range id.Path {
		elements = append(elements, "^"+regexp.QuoteMeta(name)+"$")
	}
	return strings.Join(elements, "/")
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
