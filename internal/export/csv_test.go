package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirhank/campuscore/internal/app/models"
)

func TestCSVStudents(t *testing.T) {
	state := models.State{Students: []models.Student{
		{ID: "STU1", EnrollmentNo: "BT20240042", Name: "Aarav Sharma", Email: "aarav@campuscore.edu",
			Course: "BT", Branch: "CSE", Semester: 3, Year: 2, Status: models.StudentActive},
	}}

	out, err := CSV(state, "students")
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "enrollmentNo", rows[0][1])
	assert.Equal(t, "BT20240042", rows[1][1])
	assert.Equal(t, "3", rows[1][6])
}

func TestCSVQuotesEmbeddedCommas(t *testing.T) {
	state := models.State{Books: []models.Book{
		{ID: "BKS1", Title: "Introduction to Algorithms", Author: "Cormen, Leiserson, Rivest, Stein",
			Category: "Computer Science", Copies: 4, AvailableCopies: 3},
	}}

	out, err := CSV(state, "books")
	require.NoError(t, err)

	// The raw document must quote the comma-laden author field.
	assert.Contains(t, string(out), `"Cormen, Leiserson, Rivest, Stein"`)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Cormen, Leiserson, Rivest, Stein", rows[1][2])
}

func TestCSVAmountFormatting(t *testing.T) {
	state := models.State{FeePayments: []models.FeePayment{
		{ID: "PAY1", StudentID: "STU1", FeeStructureID: "FEE1", Amount: 20000,
			PaymentDate: "2026-08-01", PaymentMode: "upi", ReceiptNo: "RCP202608010001",
			Status: models.PaymentPartial},
	}}

	out, err := CSV(state, "feePayments")
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "20000.00", rows[1][3])
}

func TestCSVUnknownCollection(t *testing.T) {
	_, err := CSV(models.State{}, "hostels")

	assert.Error(t, err)
}
