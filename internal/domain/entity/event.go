package entity

import "time"

// AttachedProduct references a product attached to an event. Products
// have no identity of their own, so the reference is by owning business
// and product name.
type AttachedProduct struct {
	BusinessID  string `json:"businessId"`
	ProductName string `json:"productName"`
}

// Event is a customer's planned event. Only the slice this subsystem
// touches is modeled: the owner and the products attached to it.
type Event struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	OwnerID  string            `json:"ownerId"`
	Date     time.Time         `json:"date"`
	Products []AttachedProduct `json:"products"`
}
