package storetests

import (
	"net/http"

	"github.com/storeqa/store-contract-tests/schemas"

	"github.com/stretchr/testify/require"
)

func DoInventoryTests(t *T) {
	t.Run("get inventory", func(t *T) {
		t.Step("send the request to get the inventory")
		resp, err := t.Client().GetInventory()
		require.NoError(t, err)

		t.Step("check the response status and validate it against the inventory schema")
		RequireStatus(t, http.StatusOK, resp)
		require.NoError(t, schemas.ValidateInventory(resp.Body))
	})
}
