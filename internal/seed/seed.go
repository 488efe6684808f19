// Package seed produces the initial dataset used when no snapshot exists.
// It is a bootstrap-only producer: all randomness lives here, behind an
// injected source, and never leaks into the deterministic core. The records
// it emits satisfy the same invariants the store enforces at runtime:
// enrollment numbers unique, fee totals matching their components, payment
// statuses consistent with the ledger, marks within exam bounds, one
// attendance record per marking slot.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/compute"
	"github.com/emirhank/campuscore/internal/pkg/auth"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
)

var studentNames = []string{
	"Aarav Sharma", "Vivaan Patel", "Aditya Verma", "Ishaan Gupta", "Arjun Mehta",
	"Ananya Singh", "Diya Kapoor", "Saanvi Reddy", "Aadhya Nair", "Kiara Joshi",
	"Rohan Malhotra", "Kabir Bose", "Dhruv Saxena", "Riya Iyer", "Tara Menon",
	"Aryan Khanna", "Myra Desai", "Vihaan Rao", "Anika Kulkarni", "Reyansh Pillai",
	"Navya Choudhary", "Atharv Trivedi", "Ira Bhatt", "Shaurya Jain", "Zara Sheikh",
	"Advik Agarwal", "Pari Mishra", "Ayaan Sinha", "Aarohi Dubey", "Vedant Tiwari",
	"Siya Chauhan", "Arnav Bhatia", "Prisha Ahuja", "Krishna Pandey", "Amaira Sethi",
	"Rudra Thakur", "Mahika Chopra", "Yuvan Shetty", "Avni Kamat", "Dev Hegde",
}

var facultyNames = []string{
	"Dr. Rajesh Kumar", "Dr. Sunita Krishnan", "Prof. Amit Chandra", "Dr. Neha Vyas",
	"Prof. Suresh Menon", "Dr. Kavita Rao", "Prof. Manoj Srivastava", "Dr. Pooja Nanda",
	"Prof. Vikram Bedi", "Dr. Lakshmi Subramaniam", "Prof. Harish Gill", "Dr. Meera Pant",
}

var designations = []string{"Professor", "Associate Professor", "Assistant Professor", "Lecturer"}

var bookCatalog = []struct{ title, author, category string }{
	{"Introduction to Algorithms", "Cormen, Leiserson, Rivest, Stein", "Computer Science"},
	{"Clean Code", "Robert C. Martin", "Computer Science"},
	{"Computer Networks", "Andrew S. Tanenbaum", "Computer Science"},
	{"Database System Concepts", "Silberschatz, Korth, Sudarshan", "Computer Science"},
	{"Digital Design", "M. Morris Mano", "Electronics"},
	{"Microelectronic Circuits", "Sedra, Smith", "Electronics"},
	{"Signals and Systems", "Alan V. Oppenheim", "Electronics"},
	{"Engineering Mechanics", "R. C. Hibbeler", "Mechanical"},
	{"Thermodynamics", "Yunus Cengel", "Mechanical"},
	{"Higher Engineering Mathematics", "B. S. Grewal", "Mathematics"},
	{"Linear Algebra and Its Applications", "Gilbert Strang", "Mathematics"},
	{"Concepts of Physics", "H. C. Verma", "Physics"},
	{"Principles of Management", "Harold Koontz", "Management"},
	{"Financial Accounting", "T. S. Grewal", "Commerce"},
	{"Organizational Behaviour", "Stephen Robbins", "Management"},
}

// Generate builds an internally consistent initial state. The generator and
// source are injected so callers can pin them for reproducible datasets.
func Generate(gen *idgen.Generator, rnd *rand.Rand, logger zerolog.Logger) models.State {
	var s models.State

	s.Courses = buildCourses(gen)
	s.Faculty = buildFaculty(gen, rnd)
	s.Students = buildStudents(gen, rnd, s.Courses)
	s.FeeStructures = buildFeeStructures(gen, s.Courses)
	s.FeePayments = buildPayments(gen, rnd, s.Students, s.FeeStructures)
	s.Attendance = buildAttendance(gen, rnd, s.Students, s.Courses)
	s.Exams, s.Results = buildExams(gen, rnd, s.Students, s.Courses)
	s.Salaries = buildSalaries(gen, s.Faculty)
	s.TransportRoutes, s.Vehicles, s.Drivers = buildTransport(gen)
	s.Hostels = buildHostels(gen, s.Students)
	s.Books, s.LibraryTransactions = buildLibrary(gen, rnd, s.Students)
	s.Clubs = buildClubs(gen, rnd, s.Faculty, s.Students)
	s.Notices = buildNotices(gen)
	s.Timetable = buildTimetable(gen, s.Courses, s.Faculty)
	s.Auth = buildAuth(gen, logger)
	s.LeaveApplications = buildLeaves(gen, s.Students, s.Faculty)
	s.Activities = buildActivities(gen, s.Students)
	s.Notifications = buildNotifications(gen, s.Auth.Users)

	// Refresh the cached derived fields so list views start consistent.
	for i := range s.Students {
		st := &s.Students[i]
		st.AttendancePercentage = compute.Attendance(attendanceOf(s.Attendance, st.ID)).Percentage
		st.CGPA = cgpaOf(s, st.ID)
	}

	return s
}

func buildCourses(gen *idgen.Generator) []models.Course {
	subject := func(name, code string, credits, theory, practical, sem int) models.Subject {
		return models.Subject{
			ID: gen.NextID("SUB"), Name: name, Code: code,
			Credits: credits, TheoryHours: theory, PracticalHours: practical, Semester: sem,
		}
	}

	return []models.Course{
		{
			ID: gen.NextID("CRS"), Name: "Bachelor of Technology", Code: "BT", Duration: 4,
			Branches: []models.Branch{
				{
					ID: gen.NextID("BRN"), Name: "Computer Science", Code: "CSE",
					Subjects: []models.Subject{
						subject("Data Structures", "CS201", 4, 3, 2, 3),
						subject("Operating Systems", "CS202", 4, 3, 2, 3),
						subject("Database Systems", "CS203", 3, 3, 2, 3),
						subject("Discrete Mathematics", "MA201", 3, 3, 0, 3),
						subject("Computer Networks", "CS301", 4, 3, 2, 5),
						subject("Software Engineering", "CS302", 3, 3, 0, 5),
					},
				},
				{
					ID: gen.NextID("BRN"), Name: "Electronics", Code: "ECE",
					Subjects: []models.Subject{
						subject("Digital Circuits", "EC201", 4, 3, 2, 3),
						subject("Signals and Systems", "EC202", 4, 3, 0, 3),
						subject("Microprocessors", "EC301", 4, 3, 2, 5),
						subject("Control Systems", "EC302", 3, 3, 0, 5),
					},
				},
				{
					ID: gen.NextID("BRN"), Name: "Mechanical", Code: "ME",
					Subjects: []models.Subject{
						subject("Engineering Mechanics", "ME201", 4, 3, 0, 3),
						subject("Thermodynamics", "ME202", 4, 3, 2, 3),
						subject("Fluid Mechanics", "ME301", 4, 3, 2, 5),
					},
				},
			},
		},
		{
			ID: gen.NextID("CRS"), Name: "Bachelor of Business Administration", Code: "BA", Duration: 3,
			Branches: []models.Branch{
				{
					ID: gen.NextID("BRN"), Name: "General Management", Code: "GEN",
					Subjects: []models.Subject{
						subject("Principles of Management", "BA101", 3, 3, 0, 1),
						subject("Business Economics", "BA102", 3, 3, 0, 1),
						subject("Financial Accounting", "BA201", 4, 3, 0, 3),
						subject("Marketing Management", "BA202", 3, 3, 0, 3),
					},
				},
			},
		},
	}
}

func buildFaculty(gen *idgen.Generator, rnd *rand.Rand) []models.Faculty {
	departments := []string{"Computer Science", "Electronics", "Mechanical", "Management", "Mathematics", "Physics"}
	year := time.Now().Year()

	out := make([]models.Faculty, 0, len(facultyNames))
	for i, name := range facultyNames {
		f := models.Faculty{
			ID:            gen.NextID("FAC"),
			Name:          name,
			Email:         fmt.Sprintf("faculty%02d@campuscore.edu", i+1),
			Phone:         fmt.Sprintf("98%08d", rnd.Intn(100000000)),
			Department:    departments[i%len(departments)],
			Designation:   designations[i%len(designations)],
			Qualification: "Ph.D.",
			Experience:    3 + rnd.Intn(20),
			BasicSalary:   float64(30000 + rnd.Intn(6)*5000),
			JoiningDate:   fmt.Sprintf("%d-07-01", year-rnd.Intn(10)-1),
			Status:        models.FacultyActive,
		}
		f.EmployeeID = idgen.Unique(
			func() string { return gen.EmployeeID(year) },
			func(id string) bool { return employeeIDExists(out, id) },
		)
		out = append(out, f)
	}
	return out
}

func employeeIDExists(faculty []models.Faculty, id string) bool {
	for _, f := range faculty {
		if f.EmployeeID == id {
			return true
		}
	}
	return false
}

func buildStudents(gen *idgen.Generator, rnd *rand.Rand, courses []models.Course) []models.Student {
	year := time.Now().Year()
	out := make([]models.Student, 0, len(studentNames))

	for i, name := range studentNames {
		course := courses[i%len(courses)]
		branch := course.Branches[i%len(course.Branches)]
		admissionYear := year - rnd.Intn(3)

		st := models.Student{
			ID:            gen.NextID("STU"),
			Name:          name,
			Email:         fmt.Sprintf("student%02d@campuscore.edu", i+1),
			Phone:         fmt.Sprintf("97%08d", rnd.Intn(100000000)),
			Gender:        []string{"male", "female"}[i%2],
			DateOfBirth:   fmt.Sprintf("%d-%02d-%02d", admissionYear-18, 1+rnd.Intn(12), 1+rnd.Intn(28)),
			Address:       fmt.Sprintf("%d MG Road", 1+rnd.Intn(200)),
			Course:        course.Code,
			Branch:        branch.Code,
			Semester:      3,
			Year:          2,
			Batch:         fmt.Sprintf("%d-%d", admissionYear, admissionYear+course.Duration),
			GuardianName:  "Guardian of " + name,
			GuardianPhone: fmt.Sprintf("96%08d", rnd.Intn(100000000)),
			AdmissionDate: fmt.Sprintf("%d-08-01", admissionYear),
			Status:        models.StudentActive,
		}
		st.EnrollmentNo = idgen.Unique(
			func() string { return gen.EnrollmentNumber(course.Code, admissionYear) },
			func(no string) bool { return enrollmentExists(out, no) },
		)
		out = append(out, st)
	}
	return out
}

func enrollmentExists(students []models.Student, no string) bool {
	for _, st := range students {
		if st.EnrollmentNo == no {
			return true
		}
	}
	return false
}

func buildFeeStructures(gen *idgen.Generator, courses []models.Course) []models.FeeStructure {
	var out []models.FeeStructure
	for _, course := range courses {
		for _, branch := range course.Branches {
			fs := models.FeeStructure{
				ID:          gen.NextID("FEE"),
				Course:      course.Code,
				Branch:      branch.Code,
				Semester:    3,
				Tuition:     40000,
				Lab:         5000,
				Library:     2000,
				Sports:      1500,
				Development: 3000,
				Examination: 2500,
				Transport:   8000,
				Hostel:      25000,
				Mess:        15000,
			}
			fs.TotalFee = fs.CoreComponentSum()
			out = append(out, fs)
		}
	}
	return out
}

func buildPayments(gen *idgen.Generator, rnd *rand.Rand, students []models.Student, structures []models.FeeStructure) []models.FeePayment {
	var out []models.FeePayment
	modes := []string{"cash", "card", "upi", "netbanking"}

	for i, st := range students {
		// Roughly a third of students have paid in full, a third partially,
		// the rest not at all.
		if i%3 == 2 {
			continue
		}
		var structure *models.FeeStructure
		for j := range structures {
			if structures[j].Course == st.Course && structures[j].Branch == st.Branch && structures[j].Semester == st.Semester {
				structure = &structures[j]
				break
			}
		}
		if structure == nil {
			continue
		}

		amount := structure.TotalFee
		status := models.PaymentPaid
		if i%3 == 1 {
			amount = float64(int(structure.TotalFee) / 2)
			status = models.PaymentPartial
		}
		receiptNo := idgen.Unique(
			gen.ReceiptNumber,
			func(no string) bool { return receiptExists(out, no) },
		)
		out = append(out, models.FeePayment{
			ID:             gen.NextID("PAY"),
			StudentID:      st.ID,
			FeeStructureID: structure.ID,
			Amount:         amount,
			PaymentDate:    fmt.Sprintf("%d-08-%02d", time.Now().Year(), 1+rnd.Intn(28)),
			PaymentMode:    modes[rnd.Intn(len(modes))],
			ReceiptNo:      receiptNo,
			Status:         status,
		})
	}
	return out
}

func receiptExists(payments []models.FeePayment, no string) bool {
	for _, p := range payments {
		if p.ReceiptNo == no {
			return true
		}
	}
	return false
}

func buildAttendance(gen *idgen.Generator, rnd *rand.Rand, students []models.Student, courses []models.Course) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	start := time.Now().AddDate(0, 0, -20)

	for _, st := range students {
		subjects := subjectsFor(courses, st.Course, st.Branch, st.Semester)
		if len(subjects) == 0 {
			continue
		}
		// One record per working day for the student's first two subjects.
		for day := 0; day < 10; day++ {
			date := start.AddDate(0, 0, day*2).Format("2006-01-02")
			for k, sub := range subjects {
				if k >= 2 {
					break
				}
				status := models.AttendancePresent
				switch roll := rnd.Intn(10); {
				case roll == 0:
					status = models.AttendanceAbsent
				case roll == 1:
					status = models.AttendanceLeave
				}
				out = append(out, models.AttendanceRecord{
					ID:        gen.NextID("ATT"),
					StudentID: st.ID,
					SubjectID: sub.ID,
					Date:      date,
					Status:    status,
					MarkedBy:  "seed",
					MarkedAt:  time.Now(),
				})
			}
		}
	}
	return out
}

func subjectsFor(courses []models.Course, courseCode, branchCode string, semester int) []models.Subject {
	for _, c := range courses {
		if c.Code != courseCode {
			continue
		}
		for _, b := range c.Branches {
			if b.Code != branchCode {
				continue
			}
			var out []models.Subject
			for _, sub := range b.Subjects {
				if sub.Semester == semester {
					out = append(out, sub)
				}
			}
			return out
		}
	}
	return nil
}

func buildExams(gen *idgen.Generator, rnd *rand.Rand, students []models.Student, courses []models.Course) ([]models.Exam, []models.Result) {
	var exams []models.Exam
	var results []models.Result

	for _, course := range courses {
		for _, branch := range course.Branches {
			subjects := subjectsFor(courses, course.Code, branch.Code, 3)
			if len(subjects) == 0 {
				continue
			}
			exam := models.Exam{
				ID:           gen.NextID("EXM"),
				Name:         "Mid Semester Examination",
				Course:       course.Code,
				Branch:       branch.Code,
				Semester:     3,
				SubjectID:    subjects[0].ID,
				Date:         time.Now().AddDate(0, -1, 0).Format("2006-01-02"),
				MaxMarks:     100,
				PassingMarks: 33,
			}
			exams = append(exams, exam)

			for _, st := range students {
				if st.Course != course.Code || st.Branch != branch.Code {
					continue
				}
				results = append(results, models.Result{
					ID:            gen.NextID("RES"),
					ExamID:        exam.ID,
					StudentID:     st.ID,
					MarksObtained: float64(25 + rnd.Intn(71)), // within [0, MaxMarks]
				})
			}
		}
	}
	return exams, results
}

func buildSalaries(gen *idgen.Generator, faculty []models.Faculty) []models.Salary {
	lastMonth := time.Now().AddDate(0, -1, 0)
	out := make([]models.Salary, 0, len(faculty))

	for _, f := range faculty {
		b := compute.Payroll(f.BasicSalary, 0)
		out = append(out, models.Salary{
			ID:              gen.NextID("SAL"),
			FacultyID:       f.ID,
			Month:           int(lastMonth.Month()),
			Year:            lastMonth.Year(),
			BasicSalary:     b.BasicSalary,
			DA:              b.DA,
			HRA:             b.HRA,
			TA:              b.TA,
			Medical:         b.Medical,
			GrossSalary:     b.GrossSalary,
			PF:              b.PF,
			ESI:             b.ESI,
			TDS:             b.TDS,
			OtherDeductions: b.OtherDeductions,
			TotalDeductions: b.TotalDeductions,
			NetSalary:       b.NetSalary,
			Status:          models.SalaryPaid,
			PaidOn:          lastMonth.Format("2006-01-02"),
		})
	}
	return out
}

func buildTransport(gen *idgen.Generator) ([]models.TransportRoute, []models.Vehicle, []models.Driver) {
	drivers := []models.Driver{
		{ID: gen.NextID("DRV"), Name: "Ramesh Yadav", Phone: "9811111111", LicenseNo: "DL-0420190001", Status: "active"},
		{ID: gen.NextID("DRV"), Name: "Sohan Lal", Phone: "9822222222", LicenseNo: "DL-0420190002", Status: "active"},
	}
	vehicles := []models.Vehicle{
		{ID: gen.NextID("VHC"), RegistrationNo: "KA01AB1234", Model: "Tata Starbus", Capacity: 40, DriverID: drivers[0].ID, Status: "active"},
		{ID: gen.NextID("VHC"), RegistrationNo: "KA01CD5678", Model: "Ashok Leyland Lynx", Capacity: 32, DriverID: drivers[1].ID, Status: "active"},
	}
	routes := []models.TransportRoute{
		{
			ID: gen.NextID("TRT"), Name: "Route 1 - City Center", StartPoint: "City Center",
			EndPoint: "Campus Gate", Stops: []string{"City Center", "Market Square", "Railway Colony", "Campus Gate"},
			Fare: 800, VehicleID: vehicles[0].ID, Status: "active",
		},
		{
			ID: gen.NextID("TRT"), Name: "Route 2 - East Side", StartPoint: "East Terminal",
			EndPoint: "Campus Gate", Stops: []string{"East Terminal", "Lake View", "Campus Gate"},
			Fare: 650, VehicleID: vehicles[1].ID, Status: "active",
		},
	}
	return routes, vehicles, drivers
}

func buildHostels(gen *idgen.Generator, students []models.Student) []models.Hostel {
	rooms := make([]models.Room, 0, 10)
	occupantIdx := 0
	for i := 0; i < 10; i++ {
		room := models.Room{
			ID:       gen.NextID("ROM"),
			Number:   fmt.Sprintf("A-%d", 101+i),
			Capacity: 2,
			Status:   "available",
		}
		// Fill the first few rooms from the student roll.
		for j := 0; j < 2 && occupantIdx < len(students)/4; j++ {
			room.Occupants = append(room.Occupants, students[occupantIdx].ID)
			occupantIdx++
		}
		if len(room.Occupants) == room.Capacity {
			room.Status = "full"
		}
		rooms = append(rooms, room)
	}

	return []models.Hostel{{
		ID:       gen.NextID("HST"),
		Name:     "Aravali House",
		Type:     "boys",
		Warden:   "Mr. K. Nair",
		Capacity: 20,
		Rooms:    rooms,
		Status:   "active",
	}}
}

func buildLibrary(gen *idgen.Generator, rnd *rand.Rand, students []models.Student) ([]models.Book, []models.LibraryTransaction) {
	books := make([]models.Book, 0, len(bookCatalog))
	for i, b := range bookCatalog {
		copies := 3 + rnd.Intn(5)
		books = append(books, models.Book{
			ID:              gen.NextID("BKS"),
			Title:           b.title,
			Author:          b.author,
			ISBN:            fmt.Sprintf("978-93-%05d-%02d-%d", rnd.Intn(100000), i, rnd.Intn(10)),
			Category:        b.category,
			Copies:          copies,
			AvailableCopies: copies,
		})
	}

	var txns []models.LibraryTransaction
	for i := 0; i < 6 && i < len(students); i++ {
		book := &books[rnd.Intn(len(books))]
		if book.AvailableCopies == 0 {
			continue
		}
		book.AvailableCopies--
		issue := time.Now().AddDate(0, 0, -rnd.Intn(10))
		txns = append(txns, models.LibraryTransaction{
			ID:        gen.NextID("LTX"),
			BookID:    book.ID,
			StudentID: students[i].ID,
			IssueDate: issue.Format("2006-01-02"),
			DueDate:   issue.AddDate(0, 0, 14).Format("2006-01-02"),
			Status:    models.LoanIssued,
		})
	}
	return books, txns
}

func buildClubs(gen *idgen.Generator, rnd *rand.Rand, faculty []models.Faculty, students []models.Student) []models.Club {
	names := []struct{ name, category string }{
		{"Coding Club", "technical"},
		{"Drama Society", "cultural"},
		{"Sports Council", "sports"},
	}
	out := make([]models.Club, 0, len(names))
	for i, n := range names {
		club := models.Club{
			ID:        gen.NextID("CLB"),
			Name:      n.name,
			Category:  n.category,
			FacultyID: faculty[i%len(faculty)].ID,
			Status:    "active",
		}
		for j := 0; j < 5; j++ {
			club.Members = append(club.Members, students[rnd.Intn(len(students))].ID)
		}
		out = append(out, club)
	}
	return out
}

func buildNotices(gen *idgen.Generator) []models.Notice {
	now := time.Now()
	return []models.Notice{
		{
			ID: gen.NextID("NTC"), Title: "Mid-semester examinations",
			Body:     "Mid-semester examinations begin on the 15th. The detailed schedule is available at the examination cell.",
			Audience: "students", PostedBy: "Examination Cell", PostedAt: now.AddDate(0, 0, -5),
		},
		{
			ID: gen.NextID("NTC"), Title: "Faculty meeting",
			Body:     "All departments to attend the academic council meeting on Friday at 3 PM.",
			Audience: "faculty", PostedBy: "Registrar", PostedAt: now.AddDate(0, 0, -2),
		},
		{
			ID: gen.NextID("NTC"), Title: "Library timings extended",
			Body:     "The central library will remain open until 10 PM during the examination period.",
			Audience: "all", PostedBy: "Chief Librarian", PostedAt: now.AddDate(0, 0, -1),
		},
	}
}

func buildTimetable(gen *idgen.Generator, courses []models.Course, faculty []models.Faculty) []models.TimetableEntry {
	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	var out []models.TimetableEntry

	for _, course := range courses {
		for _, branch := range course.Branches {
			subjects := subjectsFor(courses, course.Code, branch.Code, 3)
			for i, sub := range subjects {
				out = append(out, models.TimetableEntry{
					ID:        gen.NextID("TTE"),
					Course:    course.Code,
					Branch:    branch.Code,
					Semester:  3,
					Day:       days[i%len(days)],
					Period:    1 + i%4,
					SubjectID: sub.ID,
					FacultyID: faculty[i%len(faculty)].ID,
					Room:      fmt.Sprintf("LH-%d", 101+i%6),
				})
			}
		}
	}
	return out
}

func buildAuth(gen *idgen.Generator, logger zerolog.Logger) models.AuthState {
	users := []struct {
		email, name, password string
		role                  models.UserRole
	}{
		{"admin@campuscore.edu", "System Administrator", "Admin123!", models.RoleAdmin},
		{"registrar@campuscore.edu", "Office of the Registrar", "Registrar123!", models.RoleRegistrar},
		{"accounts@campuscore.edu", "Accounts Office", "Accounts123!", models.RoleAccounts},
	}

	out := models.AuthState{}
	for _, u := range users {
		hashed, err := auth.HashPassword(u.password)
		if err != nil {
			logger.Error().Err(err).Str("email", u.email).Msg("Failed to hash seed password")
			continue
		}
		out.Users = append(out.Users, models.User{
			ID:       gen.NextID("USR"),
			Email:    u.email,
			Password: hashed,
			Name:     u.name,
			Role:     u.role,
		})
	}
	return out
}

func buildLeaves(gen *idgen.Generator, students []models.Student, faculty []models.Faculty) []models.LeaveApplication {
	today := time.Now()
	return []models.LeaveApplication{
		{
			ID: gen.NextID("LVE"), ApplicantID: students[0].ID, ApplicantType: "student",
			FromDate: today.AddDate(0, 0, -7).Format("2006-01-02"),
			ToDate:   today.AddDate(0, 0, -5).Format("2006-01-02"),
			Reason:   "Medical leave", Status: models.LeaveApproved, ReviewedBy: "Office of the Registrar",
		},
		{
			ID: gen.NextID("LVE"), ApplicantID: faculty[0].ID, ApplicantType: "faculty",
			FromDate: today.AddDate(0, 0, 3).Format("2006-01-02"),
			ToDate:   today.AddDate(0, 0, 4).Format("2006-01-02"),
			Reason:   "Conference attendance", Status: models.LeavePending,
		},
		{
			ID: gen.NextID("LVE"), ApplicantID: students[1].ID, ApplicantType: "student",
			FromDate: today.AddDate(0, 0, 1).Format("2006-01-02"),
			ToDate:   today.AddDate(0, 0, 2).Format("2006-01-02"),
			Reason:   "Family function", Status: models.LeavePending,
		},
	}
}

func buildActivities(gen *idgen.Generator, students []models.Student) []models.Activity {
	now := time.Now()
	return []models.Activity{
		{
			ID: gen.NextID("ACT"), Kind: "student_admitted",
			Description: "Admitted " + students[len(students)-1].Name,
			ActorID:     students[len(students)-1].ID, OccurredAt: now.AddDate(0, 0, -3),
		},
		{
			ID: gen.NextID("ACT"), Kind: "notice_posted",
			Description: "Posted notice: Library timings extended",
			ActorID:     "seed", OccurredAt: now.AddDate(0, 0, -1),
		},
	}
}

func buildNotifications(gen *idgen.Generator, users []models.User) []models.Notification {
	now := time.Now()
	out := make([]models.Notification, 0, len(users))
	for _, u := range users {
		out = append(out, models.Notification{
			ID:        gen.NextID("NTF"),
			UserID:    u.ID,
			Title:     "Library timings extended",
			Body:      "The central library will remain open until 10 PM during the examination period.",
			CreatedAt: now.AddDate(0, 0, -1),
		})
	}
	return out
}

func attendanceOf(records []models.AttendanceRecord, studentID string) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, r := range records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

func cgpaOf(s models.State, studentID string) float64 {
	var entries []compute.GradeCredit
	for _, r := range s.Results {
		var exam *models.Exam
		for i := range s.Exams {
			if s.Exams[i].ID == r.ExamID {
				exam = &s.Exams[i]
				break
			}
		}
		if exam == nil || r.StudentID != studentID {
			continue
		}
		credits := 3
		for _, c := range s.Courses {
			for _, b := range c.Branches {
				for _, sub := range b.Subjects {
					if sub.ID == exam.SubjectID {
						credits = sub.Credits
					}
				}
			}
		}
		grade := compute.GradeFor(r.MarksObtained, exam.MaxMarks)
		entries = append(entries, compute.GradeCredit{GradePoint: grade.Points, Credits: credits})
	}
	return compute.CGPA(entries)
}
