package model

import (
	"time"

	"eventify/internal/domain/entity"
)

// EventFromDoc maps the slice of an event document this subsystem reads.
func EventFromDoc(id string, data map[string]any) *entity.Event {
	event := &entity.Event{
		ID:      id,
		Title:   stringField(data, "title"),
		OwnerID: stringField(data, "ownerId"),
	}

	switch date := data["date"].(type) {
	case time.Time:
		event.Date = date
	case string:
		if parsed, err := time.Parse(time.RFC3339, date); err == nil {
			event.Date = parsed
		}
	}

	if items, ok := data["products"].([]any); ok {
		event.Products = make([]entity.AttachedProduct, 0, len(items))
		for _, item := range items {
			attached, ok := item.(map[string]any)
			if !ok {
				continue
			}
			event.Products = append(event.Products, entity.AttachedProduct{
				BusinessID:  stringField(attached, "businessId"),
				ProductName: stringField(attached, "productName"),
			})
		}
	} else {
		event.Products = []entity.AttachedProduct{}
	}

	return event
}

// AttachedProductToDoc converts an attached-product reference to its
// stored shape.
func AttachedProductToDoc(product entity.AttachedProduct) map[string]any {
	return map[string]any{
		"businessId":  product.BusinessID,
		"productName": product.ProductName,
	}
}
