package storetests

import (
	"net/http"

	"github.com/storeqa/store-contract-tests/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoOrderTests(t *T) {
	t.Run("place an order", func(t *T) {
		t.Step("prepare the order payload")
		payload := NewOrderPayload(t.OrderID())

		t.Step("send the request to place the order")
		resp, err := t.Client().CreateOrder(payload)
		require.NoError(t, err)

		t.Step("check the response status and validate it against the order schema")
		RequireStatus(t, http.StatusOK, resp)
		require.NoError(t, schemas.ValidateOrder(resp.Body))

		t.Step("check the order fields in the response")
		AssertFieldsEqual(t, orderJSON(payload), resp.Body)
	})

	t.Run("get order by id", func(t *T) {
		created := CreateOrderFixture(t, NewOrderPayload(t.OrderID()))

		t.Step("send the request to get the order by id")
		resp, err := t.Client().GetOrder(created.Order.ID)
		require.NoError(t, err)

		t.Step("check the response status")
		RequireStatus(t, http.StatusOK, resp)

		t.Step("check the order fields in the response")
		AssertFieldsEqual(t, created.Body, resp.Body)
	})

	t.Run("delete order by id", func(t *T) {
		created := CreateOrderFixture(t, NewOrderPayload(t.OrderID()))

		t.Step("send the request to delete the order by id")
		resp, err := t.Client().DeleteOrder(created.Order.ID)
		require.NoError(t, err)

		t.Step("check the response status")
		RequireStatus(t, http.StatusOK, resp)

		t.Step("send the request to get the deleted order")
		resp, err = t.Client().GetOrder(created.Order.ID)
		require.NoError(t, err)

		t.Step("check the response status")
		RequireStatus(t, http.StatusNotFound, resp)
	})

	t.Run("get nonexistent order", func(t *T) {
		t.Step("send the request to get an order that does not exist")
		resp, err := t.Client().GetOrder(t.MissingOrderID())
		require.NoError(t, err)

		t.Step("check the response status")
		RequireStatus(t, http.StatusNotFound, resp)

		t.Step("check the response text")
		assert.Equal(t, NotFoundMessage, resp.Text(), "error text does not match the expected one")
	})
}
