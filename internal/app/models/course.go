package models

// Course is the top of the three-level academic hierarchy. A course owns an
// ordered set of branches, each owning its subjects. The whole tree is one
// record: updates replace the course wholesale.
type Course struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	Duration int      `json:"duration"` // years
	Branches []Branch `json:"branches"`
}

// EntityID implements Entity.
func (c Course) EntityID() string { return c.ID }

// Branch is a specialization within a course.
type Branch struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Code     string    `json:"code"`
	Subjects []Subject `json:"subjects"`
}

// Subject is a taught unit within a branch.
type Subject struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	Credits        int    `json:"credits"`
	TheoryHours    int    `json:"theoryHours"`
	PracticalHours int    `json:"practicalHours"`
	Semester       int    `json:"semester"`
}
