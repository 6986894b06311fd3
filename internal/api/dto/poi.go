package dto

type POIResponse struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Price    float64 `json:"price"`
}

type ListPOIResponse struct {
	City        string        `json:"city"`
	Attractions []POIResponse `json:"attractions"`
	Restaurants []POIResponse `json:"restaurants"`
}
