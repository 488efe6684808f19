package models

// Entity is implemented by every record kind held in the store. Collections
// are ordered by insertion and keyed by the identifier returned here.
type Entity interface {
	EntityID() string
}

// State is the complete in-memory dataset: one named collection per record
// kind plus the session sub-state. It is a value type, replaced wholesale on
// every transition and never mutated in place. The JSON shape of State is the
// snapshot document format, so field tags here are load-bearing: a collection
// absent from an old snapshot keeps its seed value on load.
type State struct {
	Students            []Student            `json:"students"`
	Faculty             []Faculty            `json:"faculty"`
	Courses             []Course             `json:"courses"`
	Attendance          []AttendanceRecord   `json:"attendance"`
	Exams               []Exam               `json:"exams"`
	Results             []Result             `json:"results"`
	FeeStructures       []FeeStructure       `json:"feeStructures"`
	FeePayments         []FeePayment         `json:"feePayments"`
	Salaries            []Salary             `json:"salaries"`
	TransportRoutes     []TransportRoute     `json:"transportRoutes"`
	Vehicles            []Vehicle            `json:"vehicles"`
	Drivers             []Driver             `json:"drivers"`
	Hostels             []Hostel             `json:"hostels"`
	Books               []Book               `json:"books"`
	LibraryTransactions []LibraryTransaction `json:"libraryTransactions"`
	Clubs               []Club               `json:"clubs"`
	Notices             []Notice             `json:"notices"`
	Timetable           []TimetableEntry     `json:"timetable"`
	LeaveApplications   []LeaveApplication   `json:"leaveApplications"`
	Activities          []Activity           `json:"activities"`
	Notifications       []Notification       `json:"notifications"`
	Auth                AuthState            `json:"auth"`
}
