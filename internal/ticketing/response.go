package ticketing

// Wire shapes for the Discovery events endpoint. Every field is optional
// on the wire; absence degrades to display defaults in the adapter.

type apiResponse struct {
	Embedded *apiEmbedded `json:"_embedded"`
	Page     *apiPage     `json:"page"`
}

type apiEmbedded struct {
	Events []apiEvent `json:"events"`
}

type apiPage struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

type apiEvent struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	URL             string              `json:"url"`
	Dates           *apiDates           `json:"dates"`
	Classifications []apiClassification `json:"classifications"`
	PriceRanges     []apiPriceRange     `json:"priceRanges"`
	Images          []apiImage          `json:"images"`
	Embedded        *apiEventVenues     `json:"_embedded"`
}

type apiDates struct {
	Start *apiStart `json:"start"`
}

type apiStart struct {
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
	DateTime  string `json:"dateTime"`
}

type apiClassification struct {
	Segment  *apiGenre `json:"segment"`
	Genre    *apiGenre `json:"genre"`
	SubGenre *apiGenre `json:"subGenre"`
}

type apiGenre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type apiPriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type apiImage struct {
	URL    string `json:"url"`
	Ratio  string `json:"ratio"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type apiEventVenues struct {
	Venues []apiVenue `json:"venues"`
}

type apiVenue struct {
	Name string `json:"name"`
}
