package dto

// Strategy is a catalog entry; ID is the route segment under /strategies.
type Strategy struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// QuickList is a named, fixed symbol set for one market.
type QuickList struct {
	Name    string `json:"name"`
	Market  Market `json:"market"`
	Symbols string `json:"symbols"`
}
