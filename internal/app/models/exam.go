package models

// Exam defines a marked assessment for a (course, branch, semester) cohort.
type Exam struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Course       string  `json:"course"`
	Branch       string  `json:"branch"`
	Semester     int     `json:"semester"`
	SubjectID    string  `json:"subjectId"`
	Date         string  `json:"date"`
	MaxMarks     float64 `json:"maxMarks"`
	PassingMarks float64 `json:"passingMarks"`
}

// EntityID implements Entity.
func (e Exam) EntityID() string { return e.ID }

// Result records the marks one student obtained in one exam. The invariant
// 0 <= MarksObtained <= exam.MaxMarks is enforced before the record is
// accepted; grades and grade points are recomputed on read, never stored.
type Result struct {
	ID            string  `json:"id"`
	ExamID        string  `json:"examId"`
	StudentID     string  `json:"studentId"`
	MarksObtained float64 `json:"marksObtained"`
}

// EntityID implements Entity.
func (r Result) EntityID() string { return r.ID }
