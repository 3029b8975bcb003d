package schemas

// OrderSchema describes a store order as returned by the order endpoints.
const OrderSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "Order",
	"type": "object",
	"required": ["id", "petId", "quantity", "status", "complete"],
	"properties": {
		"id": {
			"type": "integer"
		},
		"petId": {
			"type": "integer"
		},
		"quantity": {
			"type": "integer",
			"minimum": 0
		},
		"shipDate": {
			"type": "string"
		},
		"status": {
			"type": "string",
			"enum": ["placed", "approved", "delivered"]
		},
		"complete": {
			"type": "boolean"
		}
	}
}`
