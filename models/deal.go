package models

// Deal describes the single product this service sells.
type Deal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       int64  `json:"price"` // smallest currency unit
	Currency    string `json:"currency"`
}

// DealOfTheDay is the fixed offer (hardcoded for this demo).
var DealOfTheDay = Deal{
	Name:        "Candy Cane",
	Description: "Peppermint flavored Christmas treat with white and red stripes",
	ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/d/de/Candy-Cane-Classic.jpg",
	Price:       249,
	Currency:    "usd",
}
