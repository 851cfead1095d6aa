package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// --- Department endpoints ---

type stubDepartmentService struct {
	createErr error
	rows      []dto.DepartmentRow
}

func (s *stubDepartmentService) Create(_ context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentCreated, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.DepartmentCreated{ID: 1, Name: req.Name, Code: req.Code}, nil
}

func (s *stubDepartmentService) List(_ context.Context) ([]dto.DepartmentRow, error) {
	return s.rows, nil
}

func departmentRouter(svc *stubDepartmentService) *gin.Engine {
	router := gin.New()
	ctrl := NewDepartmentController(svc)
	router.POST("/api/departments", ctrl.Create)
	router.GET("/api/departments", ctrl.List)
	return router
}

func TestDepartmentCreateReturns201(t *testing.T) {
	router := departmentRouter(&stubDepartmentService{})

	rec := performRequest(router, http.MethodPost, "/api/departments", gin.H{
		"name": "Computer Science & Engineering",
		"code": "CSE",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body dto.DepartmentCreated
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, "CSE", body.Code)
}

func TestDepartmentCreateMissingFieldReturns400(t *testing.T) {
	router := departmentRouter(&stubDepartmentService{})

	rec := performRequest(router, http.MethodPost, "/api/departments", gin.H{"name": "CSE Dept"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}

func TestDepartmentCreateConflictReturns409(t *testing.T) {
	router := departmentRouter(&stubDepartmentService{createErr: apperrors.ErrDepartmentAlreadyExists})

	rec := performRequest(router, http.MethodPost, "/api/departments", gin.H{
		"name": "Computer Science & Engineering",
		"code": "CSE",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDepartmentListReturnsFlatArray(t *testing.T) {
	hod := "Grace Hopper"
	router := departmentRouter(&stubDepartmentService{rows: []dto.DepartmentRow{
		{
			Department: models.Department{ID: 1, Name: "CSE Dept", Code: "CSE", Status: models.StatusActive},
			HodName:    &hod,
		},
	}})

	rec := performRequest(router, http.MethodGet, "/api/departments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "CSE", rows[0]["code"])
	assert.Equal(t, "Grace Hopper", rows[0]["hod_name"])
}

// --- Subject endpoints ---

type stubSubjectService struct {
	gotFilter repositories.SubjectFilter
}

func (s *stubSubjectService) Create(_ context.Context, req dto.CreateSubjectRequest) (*dto.SubjectCreated, error) {
	return &dto.SubjectCreated{ID: 1, Name: req.Name, Code: req.Code}, nil
}

func (s *stubSubjectService) List(_ context.Context, filter repositories.SubjectFilter) ([]dto.SubjectRow, error) {
	s.gotFilter = filter
	return []dto.SubjectRow{}, nil
}

func TestSubjectListParsesFilters(t *testing.T) {
	svc := &stubSubjectService{}
	router := gin.New()
	router.GET("/api/subjects", NewSubjectController(svc).List)

	rec := performRequest(router, http.MethodGet, "/api/subjects?staff_id=7&department_id=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotFilter.StaffID)
	assert.Equal(t, int64(7), *svc.gotFilter.StaffID)
	assert.Nil(t, svc.gotFilter.CourseID)
	require.NotNil(t, svc.gotFilter.DepartmentID)
	assert.Equal(t, int64(2), *svc.gotFilter.DepartmentID)
}

func TestSubjectListMalformedFilterReturns400(t *testing.T) {
	router := gin.New()
	router.GET("/api/subjects", NewSubjectController(&stubSubjectService{}).List)

	rec := performRequest(router, http.MethodGet, "/api/subjects?course_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- Attendance endpoints ---

type stubAttendanceService struct {
	recordErr error
	got       dto.RecordAttendanceRequest
}

func (s *stubAttendanceService) Record(_ context.Context, req dto.RecordAttendanceRequest) error {
	s.got = req
	return s.recordErr
}

func (s *stubAttendanceService) List(_ context.Context, _ repositories.AttendanceFilter) ([]models.Attendance, error) {
	return []models.Attendance{}, nil
}

func TestAttendanceRecordReturnsSuccess(t *testing.T) {
	svc := &stubAttendanceService{}
	router := gin.New()
	router.POST("/api/attendance", NewAttendanceController(svc).Record)

	rec := performRequest(router, http.MethodPost, "/api/attendance", gin.H{
		"class_id":   1,
		"student_id": 2,
		"status":     "present",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
	assert.Equal(t, int64(1), svc.got.ClassID)
}

func TestAttendanceRecordUnknownClassReturns404(t *testing.T) {
	svc := &stubAttendanceService{recordErr: apperrors.ErrClassNotFound}
	router := gin.New()
	router.POST("/api/attendance", NewAttendanceController(svc).Record)

	rec := performRequest(router, http.MethodPost, "/api/attendance", gin.H{
		"class_id":   9,
		"student_id": 2,
		"status":     "present",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// --- Assignment endpoints ---

type stubAssignmentService struct {
	gotReq dto.CreateAssignmentRequest
}

func (s *stubAssignmentService) Create(_ context.Context, req dto.CreateAssignmentRequest) (*dto.AssignmentCreated, error) {
	s.gotReq = req
	return &dto.AssignmentCreated{ID: 1, Title: req.Title}, nil
}

func (s *stubAssignmentService) List(_ context.Context, _ repositories.AssignmentFilter) ([]dto.AssignmentRow, error) {
	return []dto.AssignmentRow{}, nil
}

func TestAssignmentCreateAcceptsDateDeadline(t *testing.T) {
	svc := &stubAssignmentService{}
	router := gin.New()
	router.POST("/api/assignments", NewAssignmentController(svc).Create)

	rec := performRequest(router, http.MethodPost, "/api/assignments", gin.H{
		"subject_id": 1,
		"title":      "Problem Set 1",
		"deadline":   "2026-04-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "2026-04-01", svc.gotReq.Deadline)
}

// --- Submission endpoints ---

type stubSubmissionService struct {
	gradeErr error
	gotID    int64
	gotReq   dto.GradeSubmissionRequest
}

func (s *stubSubmissionService) Create(_ context.Context, _ dto.CreateSubmissionRequest) (*dto.SubmissionCreated, error) {
	return &dto.SubmissionCreated{ID: 1}, nil
}

func (s *stubSubmissionService) List(_ context.Context, _ repositories.SubmissionFilter) ([]models.Submission, error) {
	return []models.Submission{}, nil
}

func (s *stubSubmissionService) Grade(_ context.Context, id int64, req dto.GradeSubmissionRequest) error {
	s.gotID = id
	s.gotReq = req
	return s.gradeErr
}

func TestSubmissionGrade(t *testing.T) {
	svc := &stubSubmissionService{}
	router := gin.New()
	router.PATCH("/api/submissions/:id", NewSubmissionController(svc).Grade)

	rec := performRequest(router, http.MethodPatch, "/api/submissions/5", gin.H{
		"marks":    85,
		"feedback": "good work",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
	assert.Equal(t, int64(5), svc.gotID)
	require.NotNil(t, svc.gotReq.Marks)
	assert.Equal(t, 85, *svc.gotReq.Marks)
}

func TestSubmissionGradeZeroMarks(t *testing.T) {
	svc := &stubSubmissionService{}
	router := gin.New()
	router.PATCH("/api/submissions/:id", NewSubmissionController(svc).Grade)

	rec := performRequest(router, http.MethodPatch, "/api/submissions/5", gin.H{
		"marks":    0,
		"feedback": "needs work",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
	require.NotNil(t, svc.gotReq.Marks)
	assert.Equal(t, 0, *svc.gotReq.Marks)
}

func TestSubmissionGradeMissingMarksReturns400(t *testing.T) {
	router := gin.New()
	router.PATCH("/api/submissions/:id", NewSubmissionController(&stubSubmissionService{}).Grade)

	rec := performRequest(router, http.MethodPatch, "/api/submissions/5", gin.H{"feedback": "no grade"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmissionGradeMalformedIDReturns400(t *testing.T) {
	router := gin.New()
	router.PATCH("/api/submissions/:id", NewSubmissionController(&stubSubmissionService{}).Grade)

	rec := performRequest(router, http.MethodPatch, "/api/submissions/abc", gin.H{"marks": 85})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmissionGradeUnknownReturns404(t *testing.T) {
	svc := &stubSubmissionService{gradeErr: apperrors.ErrSubmissionNotFound}
	router := gin.New()
	router.PATCH("/api/submissions/:id", NewSubmissionController(svc).Grade)

	rec := performRequest(router, http.MethodPatch, "/api/submissions/99", gin.H{"marks": 85})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "submission not found", body.Error)
}

// --- Stats endpoint ---

type stubStatsService struct{}

func (s *stubStatsService) AdminStats(_ context.Context) (*dto.AdminStats, error) {
	return &dto.AdminStats{Students: 120, Staff: 15, Departments: 4}, nil
}

func TestAdminStats(t *testing.T) {
	router := gin.New()
	router.GET("/api/admin/stats", NewStatsController(&stubStatsService{}).AdminStats)

	rec := performRequest(router, http.MethodGet, "/api/admin/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"students": 120, "staff": 15, "departments": 4}`, rec.Body.String())
}
