package models

// TransportRoute is a bus route with ordered stops.
type TransportRoute struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	StartPoint string   `json:"startPoint"`
	EndPoint   string   `json:"endPoint"`
	Stops      []string `json:"stops"`
	Fare       float64  `json:"fare"`
	VehicleID  string   `json:"vehicleId"`
	Status     string   `json:"status"` // active, suspended
}

// EntityID implements Entity.
func (t TransportRoute) EntityID() string { return t.ID }

// Vehicle is a bus or van in the transport fleet.
type Vehicle struct {
	ID             string `json:"id"`
	RegistrationNo string `json:"registrationNo"`
	Model          string `json:"model"`
	Capacity       int    `json:"capacity"`
	DriverID       string `json:"driverId"`
	Status         string `json:"status"` // active, maintenance, inactive
}

// EntityID implements Entity.
func (v Vehicle) EntityID() string { return v.ID }

// Driver operates a fleet vehicle.
type Driver struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	LicenseNo string `json:"licenseNo"`
	Status    string `json:"status"` // active, inactive
}

// EntityID implements Entity.
func (d Driver) EntityID() string { return d.ID }
