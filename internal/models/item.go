// Package models defines the product record types shared by the spider,
// the cleaner, and the validator.
package models

// RawItem is a loosely-typed product record as emitted directly from page
// extraction. No field is guaranteed present; absent fields are omitted
// from the JSON output.
type RawItem struct {
	ProductURL         string   `json:"product_url,omitempty"`
	ProductName        string   `json:"product_name,omitempty"`
	Price              string   `json:"price,omitempty"`
	RegularPrice       string   `json:"regular_price,omitempty"`
	Currency           string   `json:"currency,omitempty"`
	ProductDescription string   `json:"product_description,omitempty"`
	ProductID          string   `json:"product_id,omitempty"`
	UniqueID           string   `json:"unique_id,omitempty"`
	Ingredients        string   `json:"ingredients,omitempty"`
	Details            string   `json:"details,omitempty"`
	Images             []string `json:"images,omitempty"`
	// Image is the first entry of Images, kept as a singular convenience
	// field for downstream consumers.
	Image string `json:"image,omitempty"`
}

// CleanedItem is a normalized, deduplicated record as produced by the
// cleaning pass. Every field is always present; absent values are empty
// strings. Images holds the semicolon-joined URL list.
type CleanedItem struct {
	UniqueID           string `json:"unique_id"`
	ProductID          string `json:"product_id"`
	ProductName        string `json:"product_name"`
	ProductURL         string `json:"product_url"`
	Price              string `json:"price"`
	RegularPrice       string `json:"regular_price"`
	Currency           string `json:"currency"`
	ProductDescription string `json:"product_description"`
	Ingredients        string `json:"ingredients"`
	Details            string `json:"details"`
	Images             string `json:"images"`
}

// CleanedFieldOrder is the fixed CSV column order for cleaned records.
var CleanedFieldOrder = []string{
	"unique_id",
	"product_id",
	"product_name",
	"product_url",
	"price",
	"regular_price",
	"currency",
	"product_description",
	"ingredients",
	"details",
	"images",
}

// Record returns the item's values in CleanedFieldOrder, for CSV output.
func (c *CleanedItem) Record() []string {
	return []string{
		c.UniqueID,
		c.ProductID,
		c.ProductName,
		c.ProductURL,
		c.Price,
		c.RegularPrice,
		c.Currency,
		c.ProductDescription,
		c.Ingredients,
		c.Details,
		c.Images,
	}
}

// Field returns the item's value for one of the fixed CSV column names.
// Unknown names return the empty string.
func (c *CleanedItem) Field(name string) string {
	switch name {
	case "unique_id":
		return c.UniqueID
	case "product_id":
		return c.ProductID
	case "product_name":
		return c.ProductName
	case "product_url":
		return c.ProductURL
	case "price":
		return c.Price
	case "regular_price":
		return c.RegularPrice
	case "currency":
		return c.Currency
	case "product_description":
		return c.ProductDescription
	case "ingredients":
		return c.Ingredients
	case "details":
		return c.Details
	case "images":
		return c.Images
	default:
		return ""
	}
}
