package models

// WeekInfo identifies a calendar week within a month. Display is the only
// key used to identify a week elsewhere; there is no numeric week id.
type WeekInfo struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Week    int    `json:"week"`
	Display string `json:"display"`
}
