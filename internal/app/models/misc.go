package models

import "time"

// Club is a student organization.
type Club struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	FacultyID string   `json:"facultyId"` // faculty member in charge
	Members   []string `json:"members"`   // student IDs
	Status    string   `json:"status"`    // active, inactive
}

// EntityID implements Entity.
func (c Club) EntityID() string { return c.ID }

// Notice is an announcement posted to one audience.
type Notice struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Audience string    `json:"audience"` // all, students, faculty
	PostedBy string    `json:"postedBy"`
	PostedAt time.Time `json:"postedAt"`
}

// EntityID implements Entity.
func (n Notice) EntityID() string { return n.ID }

// TimetableEntry schedules one subject period for a cohort.
type TimetableEntry struct {
	ID        string `json:"id"`
	Course    string `json:"course"`
	Branch    string `json:"branch"`
	Semester  int    `json:"semester"`
	Day       string `json:"day"`
	Period    int    `json:"period"`
	SubjectID string `json:"subjectId"`
	FacultyID string `json:"facultyId"`
	Room      string `json:"room"`
}

// EntityID implements Entity.
func (t TimetableEntry) EntityID() string { return t.ID }

// LeaveStatus represents the review state of a leave application.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveApplication is a leave request from a student or faculty member.
type LeaveApplication struct {
	ID            string      `json:"id"`
	ApplicantID   string      `json:"applicantId"`
	ApplicantType string      `json:"applicantType"` // student, faculty
	FromDate      string      `json:"fromDate"`
	ToDate        string      `json:"toDate"`
	Reason        string      `json:"reason"`
	Status        LeaveStatus `json:"status"`
	ReviewedBy    string      `json:"reviewedBy"`
}

// EntityID implements Entity.
func (l LeaveApplication) EntityID() string { return l.ID }

// Activity is an audit-trail entry describing one administrative action.
type Activity struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	ActorID     string    `json:"actorId"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// EntityID implements Entity.
func (a Activity) EntityID() string { return a.ID }

// Notification is an in-app message for one user.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntityID implements Entity.
func (n Notification) EntityID() string { return n.ID }
