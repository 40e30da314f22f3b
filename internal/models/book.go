package models

import (
	"time"
)

// Book is the single persisted inventory entity. CostUSD is the acquisition
// cost in the reference currency; SellingPriceLocal stays null until the
// first successful price calculation and is only ever written by the price
// calculator, never by client updates.
type Book struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	ISBN              string    `json:"isbn"`
	CostUSD           Money     `json:"cost_usd"`
	SellingPriceLocal NullMoney `json:"selling_price_local"`
	StockQuantity     int       `json:"stock_quantity"`
	Category          string    `json:"category"`
	SupplierCountry   string    `json:"supplier_country"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
