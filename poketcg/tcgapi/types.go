package tcgapi

// Card is one catalog entry from the card-data API.
type Card struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Rarity     string      `json:"rarity"`
	Images     CardImages  `json:"images"`
	Cardmarket *Cardmarket `json:"cardmarket"`
}

type CardImages struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

type Cardmarket struct {
	Prices CardPrices `json:"prices"`
}

type CardPrices struct {
	AverageSellPrice float64 `json:"averageSellPrice"`
}

// Price is the market price used everywhere cash changes hands. Cards the
// market has no data for sell for nothing.
func (c Card) Price() float64 {
	if c.Cardmarket == nil {
		return 0
	}
	return c.Cardmarket.Prices.AverageSellPrice
}

// Image prefers the large rendition.
func (c Card) Image() string {
	if c.Images.Large != "" {
		return c.Images.Large
	}
	return c.Images.Small
}
