package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emirhank/campuscore/internal/app/controllers"
	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	facultyController *controllers.FacultyController,
	academicController *controllers.AcademicController,
	attendanceController *controllers.AttendanceController,
	examController *controllers.ExamController,
	feeController *controllers.FeeController,
	payrollController *controllers.PayrollController,
	libraryController *controllers.LibraryController,
	registryController *controllers.RegistryController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// Course catalog is public read
	v1.GET("/courses", academicController.GetAllCourses)
	v1.GET("/courses/:id", academicController.GetCourseByID)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/me", authController.Me)
		authenticated.POST("/auth/change-password", authController.ChangePassword)

		// Students
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.GET("/:id/report", studentController.GetStudentReport)
			students.GET("/:id/fees", studentController.GetStudentFeeStatus)

			studentsRegistrar := students.Group("")
			studentsRegistrar.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleRegistrar)))
			{
				studentsRegistrar.POST("", studentController.CreateStudent)
				studentsRegistrar.PUT("/:id", studentController.UpdateStudent)
				studentsRegistrar.DELETE("/:id", studentController.DeleteStudent)
			}
		}

		// Faculty
		faculty := authenticated.Group("/faculty")
		{
			faculty.GET("", facultyController.GetAllFaculty)
			faculty.GET("/:id", facultyController.GetFacultyByID)

			facultyAdmin := faculty.Group("")
			facultyAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleRegistrar)))
			{
				facultyAdmin.POST("", facultyController.CreateFaculty)
				facultyAdmin.PUT("/:id", facultyController.UpdateFaculty)
				facultyAdmin.DELETE("/:id", facultyController.DeleteFaculty)
			}
		}

		// Courses (writes)
		coursesAdmin := authenticated.Group("/courses")
		coursesAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleRegistrar)))
		{
			coursesAdmin.POST("", academicController.CreateCourse)
			coursesAdmin.PUT("/:id", academicController.UpdateCourse)
			coursesAdmin.DELETE("/:id", academicController.DeleteCourse)
		}

		// Attendance
		attendance := authenticated.Group("/attendance")
		{
			attendance.POST("", attendanceController.MarkAttendance)
			attendance.DELETE("/:id", attendanceController.DeleteAttendance)
			attendance.GET("/students/:studentId", attendanceController.GetStudentAttendance)
			attendance.GET("/students/:studentId/stats", attendanceController.GetStudentAttendanceStats)
			attendance.GET("/subjects/:subjectId/stats", attendanceController.GetSubjectAttendanceStats)
		}

		// Exams and results
		exams := authenticated.Group("/exams")
		{
			exams.GET("", examController.GetAllExams)
			exams.POST("", examController.CreateExam)
			exams.PUT("/:id", examController.UpdateExam)
			exams.DELETE("/:id", examController.DeleteExam)
		}
		authenticated.POST("/results", examController.RecordResult)
		authenticated.DELETE("/results/:id", examController.DeleteResult)

		// Fees: structure writes and payments need the accounts or admin role
		fees := authenticated.Group("/fees")
		{
			fees.GET("/structures", feeController.GetAllFeeStructures)
			fees.GET("/payments", feeController.GetAllPayments)

			feesAccounts := fees.Group("")
			feesAccounts.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleAccounts)))
			{
				feesAccounts.POST("/structures", feeController.CreateFeeStructure)
				feesAccounts.PUT("/structures/:id", feeController.UpdateFeeStructure)
				feesAccounts.DELETE("/structures/:id", feeController.DeleteFeeStructure)
				feesAccounts.POST("/payments", feeController.RecordPayment)
				feesAccounts.DELETE("/payments/:id", feeController.DeletePayment)
			}
		}

		// Payroll is accounts or admin only
		payroll := authenticated.Group("/payroll")
		payroll.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleAccounts)))
		{
			payroll.GET("", payrollController.GetAllSalaries)
			payroll.POST("", payrollController.GeneratePayroll)
			payroll.GET("/preview/:facultyId", payrollController.PreviewPayroll)
			payroll.POST("/:id/pay", payrollController.MarkSalaryPaid)
			payroll.DELETE("/:id", payrollController.DeleteSalary)
		}

		// Library
		library := authenticated.Group("/library")
		{
			library.GET("/books", libraryController.GetAllBooks)
			library.POST("/books", libraryController.AddBook)
			library.PUT("/books/:id", libraryController.UpdateBook)
			library.DELETE("/books/:id", libraryController.DeleteBook)
			library.POST("/issue", libraryController.IssueBook)
			library.POST("/return", libraryController.ReturnBook)
			library.GET("/transactions", libraryController.GetAllTransactions)
		}

		// Transport registry
		transport := authenticated.Group("/transport")
		{
			transport.GET("/routes", registryController.GetAllRoutes)
			transport.POST("/routes", registryController.CreateRoute)
			transport.PUT("/routes/:id", registryController.UpdateRoute)
			transport.DELETE("/routes/:id", registryController.DeleteRoute)
			transport.GET("/vehicles", registryController.GetAllVehicles)
			transport.POST("/vehicles", registryController.CreateVehicle)
			transport.PUT("/vehicles/:id", registryController.UpdateVehicle)
			transport.DELETE("/vehicles/:id", registryController.DeleteVehicle)
			transport.GET("/drivers", registryController.GetAllDrivers)
			transport.POST("/drivers", registryController.CreateDriver)
			transport.PUT("/drivers/:id", registryController.UpdateDriver)
			transport.DELETE("/drivers/:id", registryController.DeleteDriver)
		}

		// Hostels
		hostels := authenticated.Group("/hostels")
		{
			hostels.GET("", registryController.GetAllHostels)
			hostels.POST("", registryController.CreateHostel)
			hostels.PUT("/:id", registryController.UpdateHostel)
			hostels.DELETE("/:id", registryController.DeleteHostel)
		}

		// Clubs
		clubs := authenticated.Group("/clubs")
		{
			clubs.GET("", registryController.GetAllClubs)
			clubs.POST("", registryController.CreateClub)
			clubs.PUT("/:id", registryController.UpdateClub)
			clubs.DELETE("/:id", registryController.DeleteClub)
		}

		// Notices
		notices := authenticated.Group("/notices")
		{
			notices.GET("", registryController.GetAllNotices)
			notices.POST("", registryController.PostNotice)
			notices.DELETE("/:id", registryController.DeleteNotice)
		}

		// Timetable
		timetable := authenticated.Group("/timetable")
		{
			timetable.GET("", registryController.GetTimetable)
			timetable.POST("", registryController.CreateTimetableEntry)
			timetable.PUT("/:id", registryController.UpdateTimetableEntry)
			timetable.DELETE("/:id", registryController.DeleteTimetableEntry)
		}

		// Leave applications
		leaves := authenticated.Group("/leaves")
		{
			leaves.GET("", registryController.GetAllLeaves)
			leaves.POST("", registryController.ApplyLeave)
			leaves.POST("/:id/review", registryController.ReviewLeave)
			leaves.DELETE("/:id", registryController.DeleteLeave)
		}

		// Activity trail and notifications
		authenticated.GET("/activities", registryController.GetAllActivities)
		authenticated.GET("/notifications", registryController.GetMyNotifications)
		authenticated.POST("/notifications/:id/read", registryController.MarkNotificationRead)

		// Administration, admin role only
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/dashboard", adminController.GetDashboard)
			admin.POST("/reset", adminController.ResetData)
			admin.POST("/save", adminController.SaveSnapshot)
			admin.GET("/export/:collection", adminController.ExportCollection)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
