package framework

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const serviceQueryInterval = time.Millisecond * 100

// AwaitService polls the given URL with GET requests until the service answers with any HTTP
// response, or until the timeout elapses. Progress dots are written to output. It returns the
// status code of the first response.
//
// A status code of 500 or above is treated as "not ready yet" until the deadline, so that a
// service that is still starting up behind a proxy is given a chance to come up.
func AwaitService(
	client *http.Client,
	url string,
	timeout time.Duration,
	output io.Writer,
	debugLogger Logger,
) (int, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	fmt.Fprintf(output, "Connecting to service at %s", url)

	deadline := time.Now().Add(timeout)
	lastStatus := 0
	for {
		fmt.Fprintf(output, ".")
		debugLogger.Printf("Making request to %s", url)
		status, err := queryService(client, url, deadline)
		if err == nil {
			debugLogger.Printf("Got %d status from %s", status, url)
			if status < 500 {
				fmt.Fprintln(output)
				return status, nil
			}
			lastStatus = status
		} else {
			debugLogger.Printf("Request to %s failed: %s", url, err)
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			if lastStatus != 0 {
				return lastStatus, fmt.Errorf("service returned status code %d", lastStatus)
			}
			return 0, fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(serviceQueryInterval)
	}
}

// queryService makes one GET request that is abandoned when the deadline passes, regardless of
// the client's own timeout.
func queryService(client *http.Client, url string, deadline time.Time) (int, error) {
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
