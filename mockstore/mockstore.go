// Package mockstore is an in-memory stand-in for the Store API, used to test the contract test
// suite itself. It implements just enough of the API for the suite's scenarios, and it can be
// told to misbehave in specific ways so that tests can verify the suite notices.
package mockstore

import (
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/storeqa/store-contract-tests/storeapi"

	"github.com/gin-gonic/gin"
)

// BasePath is the path prefix under which the mock serves the store endpoints.
const BasePath = "/api/v3/store"

// NotFoundMessage is the plain-text body returned for an unknown order ID.
const NotFoundMessage = "Order not found"

// Faults describes deliberate deviations from the real API's behavior. The zero value means
// the mock behaves correctly.
type Faults struct {
	// CreateStatus, if nonzero, makes POST /order fail with this status without storing anything.
	CreateStatus int
	// AlterCreated, if set, is applied to an order after it is stored and before it is echoed
	// back, so the response no longer matches the request.
	AlterCreated func(*storeapi.Order)
	// IgnoreDelete makes DELETE /order/{id} report success without removing the order.
	IgnoreDelete bool
	// NotFoundMessage replaces the 404 body text.
	NotFoundMessage string
	// Inventory, if set, is returned verbatim from GET /inventory.
	Inventory interface{}
}

// Store holds orders in memory and serves them over HTTP.
type Store struct {
	mu     sync.RWMutex
	orders map[int64]storeapi.Order
	faults Faults
	router *gin.Engine
}

// New creates an empty Store.
func New(faults Faults) *Store {
	gin.SetMode(gin.TestMode)
	s := &Store{
		orders: map[int64]storeapi.Order{},
		faults: faults,
		router: gin.New(),
	}
	group := s.router.Group(BasePath)
	group.POST("/order", s.placeOrder)
	group.GET("/order/:orderId", s.getOrder)
	group.DELETE("/order/:orderId", s.deleteOrder)
	group.GET("/inventory", s.getInventory)
	return s
}

// ServeHTTP makes the Store usable as an http.Handler.
func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Put stores an order directly, bypassing HTTP.
func (s *Store) Put(order storeapi.Order) {
	s.mu.Lock()
	s.orders[order.ID] = order
	s.mu.Unlock()
}

// Get returns a stored order, bypassing HTTP.
func (s *Store) Get(id int64) (storeapi.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	return order, ok
}

// IDs returns the IDs of all stored orders in ascending order.
func (s *Store) IDs() []int64 {
	s.mu.RLock()
	ids := make([]int64, 0, len(s.orders))
	for id := range s.orders {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *Store) placeOrder(c *gin.Context) {
	if s.faults.CreateStatus != 0 {
		c.String(s.faults.CreateStatus, http.StatusText(s.faults.CreateStatus))
		return
	}
	var order storeapi.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.String(http.StatusBadRequest, "Input error: unable to parse order")
		return
	}
	if order.Status == "" {
		order.Status = storeapi.StatusPlaced
	}
	if !validStatus(order.Status) || order.Quantity < 0 {
		c.String(http.StatusBadRequest, "Input error: invalid order")
		return
	}
	s.Put(order)
	if s.faults.AlterCreated != nil {
		s.faults.AlterCreated(&order)
	}
	c.JSON(http.StatusOK, order)
}

func (s *Store) getOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, found := s.Get(id)
	if !found {
		s.notFound(c)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Store) deleteOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.orders[id]
	if found && !s.faults.IgnoreDelete {
		delete(s.orders, id)
	}
	s.mu.Unlock()
	if !found {
		s.notFound(c)
		return
	}
	c.Status(http.StatusOK)
}

func (s *Store) getInventory(c *gin.Context) {
	if s.faults.Inventory != nil {
		c.JSON(http.StatusOK, s.faults.Inventory)
		return
	}
	inventory := storeapi.Inventory{}
	s.mu.RLock()
	for _, order := range s.orders {
		inventory[string(order.Status)] += int(order.Quantity)
	}
	s.mu.RUnlock()
	c.JSON(http.StatusOK, inventory)
}

func (s *Store) notFound(c *gin.Context) {
	message := s.faults.NotFoundMessage
	if message == "" {
		message = NotFoundMessage
	}
	c.Data(http.StatusNotFound, "text/plain", []byte(message))
}

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Input error: couldn't convert `orderId` to type `long`")
		return 0, false
	}
	return id, true
}

func validStatus(status storeapi.Status) bool {
	switch status {
	case storeapi.StatusPlaced, storeapi.StatusApproved, storeapi.StatusDelivered:
		return true
	default:
		return false
	}
}
