package models

// Hostel is a residence building; its rooms are owned by the record and
// replaced wholesale with it.
type Hostel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"` // boys, girls
	Warden   string `json:"warden"`
	Capacity int    `json:"capacity"`
	Rooms    []Room `json:"rooms"`
	Status   string `json:"status"` // active, closed
}

// EntityID implements Entity.
func (h Hostel) EntityID() string { return h.ID }

// Room is a single hostel room; Occupants holds student IDs.
type Room struct {
	ID        string   `json:"id"`
	Number    string   `json:"number"`
	Capacity  int      `json:"capacity"`
	Occupants []string `json:"occupants"`
	Status    string   `json:"status"` // available, full, maintenance
}
