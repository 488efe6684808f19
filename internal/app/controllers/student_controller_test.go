package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/services"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/store"
)

func newStudentRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(models.State{
		Courses: []models.Course{{
			ID: "CRS1", Name: "Bachelor of Technology", Code: "BT", Duration: 4,
			Branches: []models.Branch{{ID: "BRN1", Name: "Computer Science", Code: "CSE"}},
		}},
	}, zerolog.Nop())

	ids := idgen.New()
	controller := NewStudentController(
		services.NewStudentService(st, ids),
		services.NewExamService(st, ids),
		services.NewFeeService(st, ids),
	)

	router := gin.New()
	router.POST("/students", controller.CreateStudent)
	router.GET("/students", controller.GetAllStudents)
	router.GET("/students/:id", controller.GetStudentByID)
	router.DELETE("/students/:id", controller.DeleteStudent)
	return router, st
}

func TestCreateStudentEndpoint(t *testing.T) {
	router, st := newStudentRouter(t)

	body, _ := json.Marshal(models.Student{
		Name: "Aarav Sharma", Email: "aarav@campuscore.edu",
		Course: "BT", Branch: "CSE", Semester: 3,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Student `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.ID)
	assert.NotEmpty(t, resp.Data.EnrollmentNo)
	assert.Equal(t, 2, resp.Data.Year) // derived from semester

	require.Len(t, st.State().Students, 1)
}

func TestCreateStudentRejectsUnknownBranch(t *testing.T) {
	router, st := newStudentRouter(t)

	body, _ := json.Marshal(models.Student{
		Name: "Aarav Sharma", Course: "BT", Branch: "ECE", Semester: 3,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, st.State().Students)
}

func TestGetStudentByIDNotFound(t *testing.T) {
	router, _ := newStudentRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students/STU-missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteStudentNotFound(t *testing.T) {
	router, _ := newStudentRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/students/STU-missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
