package entities

// Amounts cross the public boundary as integers in minor currency units and
// are sent to iPay in major units.

type Amount struct {
	CurrencyCode Currency `json:"currency_code"`
	Value        float64  `json:"value"`
}

type PurchaseUnit struct {
	Amount       Amount       `json:"amount"`
	IndustryType IndustryType `json:"industry_type"`
}

type PurchaseItem struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	ProductID   string  `json:"product_id"`
}

// MinorToMajor converts an amount in minor units to major units (1050 -> 10.5).
func MinorToMajor(amountMinor int64) float64 {
	return float64(amountMinor) / 100
}

// BuildPurchaseUnit defaults to GEL and ECOMMERCE when currency or industry
// type are empty.
func BuildPurchaseUnit(amountMinor int64, currency Currency, industryType IndustryType) PurchaseUnit {
	if currency == "" {
		currency = CurrencyGEL
	}
	if industryType == "" {
		industryType = IndustryTypeEcommerce
	}
	return PurchaseUnit{
		Amount: Amount{
			CurrencyCode: currency,
			Value:        MinorToMajor(amountMinor),
		},
		IndustryType: industryType,
	}
}

// BuildPurchaseItem treats a non-positive quantity as 1.
func BuildPurchaseItem(productID string, amountMinor int64, quantity int, description string) PurchaseItem {
	if quantity <= 0 {
		quantity = 1
	}
	return PurchaseItem{
		Amount:      MinorToMajor(amountMinor),
		Description: description,
		Quantity:    quantity,
		ProductID:   productID,
	}
}
