package storetests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/storeqa/store-contract-tests/storeapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// CreatedOrder is an order that a fixture placed on the service, as the service reported it.
type CreatedOrder struct {
	Order storeapi.Order
	Body  []byte
}

// NewOrderPayload returns the order that the tests place: one unit of pet 1, placed and complete.
func NewOrderPayload(id int64) storeapi.Order {
	return storeapi.Order{
		ID:       id,
		PetID:    1,
		Quantity: 1,
		Status:   storeapi.StatusPlaced,
		Complete: true,
	}
}

// CreateOrderFixture places the order and returns the service's representation of it. If the
// order cannot be placed, the test is aborted with a setup error. Nothing is cleaned up
// afterward; deleting the order is itself one of the behaviors under test.
func CreateOrderFixture(t *T, payload storeapi.Order) CreatedOrder {
	t.Step("place an order to use in the test")
	resp, err := t.client.CreateOrder(payload)
	if err != nil {
		t.Abort(fmt.Errorf("could not place order: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		t.Abort(fmt.Errorf("placing order returned status %d: %s", resp.StatusCode, resp.Text()))
	}
	var order storeapi.Order
	if err := resp.DecodeJSON(&order); err != nil {
		t.Abort(fmt.Errorf("placed order could not be read: %w", err))
	}
	return CreatedOrder{Order: order, Body: resp.Body}
}

// RequireStatus fails and exits the test if the response does not have the expected status.
func RequireStatus(t *T, expected int, resp storeapi.Response) {
	require.Equal(t, expected, resp.StatusCode,
		"response status code does not match the expected one; response body was: %s", resp.Text())
}

// AssertFieldsEqual checks that every property of the expected JSON object is present in the
// actual JSON object with an equal value. Numbers are compared by their decimal text, so large
// integer IDs must match in every digit.
func AssertFieldsEqual(t *T, expected, actual []byte) {
	actualValue := ldvalue.Parse(actual)
	require.Equal(t, ldvalue.ObjectType, actualValue.Type(), "response body is not a JSON object: %s", string(actual))
	expectedFields, err := decodeObject(expected)
	require.NoError(t, err)
	actualFields, err := decodeObject(actual)
	require.NoError(t, err)

	keys := make([]string, 0, len(expectedFields))
	for key := range expectedFields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		assert.Equal(t, expectedFields[key], actualFields[key], "%s does not match the expected value", key)
	}
}

func decodeObject(data []byte) (map[string]interface{}, error) {
	var fields map[string]interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&fields); err != nil {
		return nil, fmt.Errorf("malformed JSON object %q: %w", string(data), err)
	}
	return fields, nil
}

func orderJSON(order storeapi.Order) []byte {
	data, _ := json.Marshal(order)
	return data
}
