package storeapi

// Status enumerates order progression.
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusApproved  Status = "approved"
	StatusDelivered Status = "delivered"
)

// Order is a store purchase order as it appears on the wire.
type Order struct {
	ID       int64  `json:"id"`
	PetID    int64  `json:"petId"`
	Quantity int32  `json:"quantity"`
	ShipDate string `json:"shipDate,omitempty"`
	Status   Status `json:"status"`
	Complete bool   `json:"complete"`
}

// Inventory maps an order status to the number of orders in that status.
type Inventory map[string]int
