package models

// Product is a catalog entry. The catalog is read-only for this service;
// products are loaded once at startup and never mutated.
//
// JSON tags match the persisted cart blob layout, where each line embeds the
// product it was added with.
type Product struct {
	ID               string  `json:"id" bson:"id"`
	Slug             string  `json:"slug" bson:"slug"`
	Name             string  `json:"name" bson:"name"`
	Category         string  `json:"category" bson:"category"`
	Price            float64 `json:"price" bson:"price"`
	Currency         string  `json:"currency" bson:"currency"` // USD, EUR or CUP
	Unit             string  `json:"unit" bson:"unit"`         // "500g", "1L", ...
	Origin           string  `json:"origin" bson:"origin"`
	ShortDescription string  `json:"shortDescription" bson:"shortDescription"`
	Description      string  `json:"description" bson:"description"`
	Ingredients      string  `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	ImageURL         string  `json:"imageUrl" bson:"imageUrl"`
	Featured         bool    `json:"featured,omitempty" bson:"featured,omitempty"`
}

// DeliveryZone is a named delivery area with a flat fee.
type DeliveryZone struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}
