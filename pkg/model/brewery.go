package model

// Brewery is a row of the externally loaded breweries table. Every column but
// the key is nullable free text.
type Brewery struct {
	ID          uint `gorm:"primaryKey"`
	Name        *string
	BreweryType *string
	Address     *string
	State       *string
	Phone       *string
	WebsiteURL  *string `gorm:"column:website_url"`
	Country     *string
	Region      *string
	Division    *string
}

func (Brewery) TableName() string {
	return "breweries"
}

// BreweryListing is the business projection of a Brewery served by /api/all.
type BreweryListing struct {
	Name        *string `json:"name"`
	BreweryType *string `json:"brewery_type"`
	Address     *string `json:"address"`
	State       *string `json:"state"`
	Phone       *string `json:"phone"`
	WebsiteURL  *string `gorm:"column:website_url" json:"website_url"`
	Country     *string `json:"country"`
	Region      *string `json:"region"`
	Division    *string `json:"division"`
}

// ListingColumns are the columns of BreweryListing in schema order.
var ListingColumns = []string{
	"name", "brewery_type", "address", "state", "phone", "website_url", "country", "region", "division",
}
