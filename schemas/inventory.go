package schemas

// InventorySchema describes the store inventory: a map of order status to the number of
// orders in that status.
const InventorySchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "Inventory",
	"type": "object",
	"additionalProperties": {
		"type": "integer",
		"minimum": 0
	}
}`
