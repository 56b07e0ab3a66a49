package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	portssvc "github.com/hostalqori/hotel_management_app/internal/core/ports/services"
	"github.com/hostalqori/hotel_management_app/internal/dto"
	"github.com/hostalqori/hotel_management_app/internal/handlers"
	"github.com/hostalqori/hotel_management_app/pkg/config"
	"github.com/hostalqori/hotel_management_app/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportStays(ctx context.Context, rows []dto.RowRecord, batchNumber, totalBatches int) (*dto.BatchResult, error) {
	args := m.Called(ctx, rows, batchNumber, totalBatches)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BatchResult), args.Error(1)
}

func (m *MockImportService) DeleteImportedStays(ctx context.Context, rows []dto.RowRecord) (*dto.DeletionResult, error) {
	args := m.Called(ctx, rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeletionResult), args.Error(1)
}

func (m *MockImportService) AnalyzeImportedStays(ctx context.Context, rows []dto.RowRecord) (*dto.AnalysisResult, error) {
	args := m.Called(ctx, rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnalysisResult), args.Error(1)
}

type ImportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockImportService
}

func (suite *ImportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockImportService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{Import: suite.mockService})
}

func (suite *ImportHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleRows() []dto.RowRecord {
	return []dto.RowRecord{{
		dto.ColFullName:       "Juan Pérez Quispe",
		dto.ColDocumentNumber: "12345678",
		dto.ColTotalPrice:     "160",
	}}
}

func (suite *ImportHandlerTestSuite) TestImportStaysJSON() {
	rows := sampleRows()
	suite.mockService.On("ImportStays", mock.Anything, rows, 1, 2).
		Return(&dto.BatchResult{Success: true, Processed: 1, Successful: 1}, nil).Once()

	w := suite.postJSON("/api/v1/imports/stays", dto.ImportStaysRequest{Rows: rows, BatchNumber: 1, TotalBatches: 2})

	suite.Equal(http.StatusOK, w.Code)
	var result dto.BatchResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.True(result.Success)
	suite.Equal(1, result.Successful)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ImportHandlerTestSuite) TestImportStaysMultipartUpload() {
	workbook := buildTestWorkbook(suite.T(), [][]any{
		{"NOMBRE", "DOCUMENTO", "TOTAL"},
		{"Juan Pérez Quispe", "12345678", "160"},
	})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "registro.xlsx")
	suite.Require().NoError(err)
	_, err = part.Write(workbook)
	suite.Require().NoError(err)
	suite.Require().NoError(writer.WriteField("batchNumber", "3"))
	suite.Require().NoError(writer.WriteField("totalBatches", "7"))
	suite.Require().NoError(writer.Close())

	suite.mockService.On("ImportStays", mock.Anything, mock.MatchedBy(func(rows []dto.RowRecord) bool {
		return len(rows) == 1 && rows[0][dto.ColFullName] == "Juan Pérez Quispe"
	}), 3, 7).Return(&dto.BatchResult{Success: true, Processed: 1, Successful: 1}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/stays", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ImportHandlerTestSuite) TestImportStaysValidationErrorIs400() {
	suite.mockService.On("ImportStays", mock.Anything, mock.Anything, 0, 0).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.postJSON("/api/v1/imports/stays", dto.ImportStaysRequest{Rows: sampleRows()})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ImportHandlerTestSuite) TestImportStaysServiceErrorIs500() {
	suite.mockService.On("ImportStays", mock.Anything, mock.Anything, 0, 0).
		Return(nil, apperrors.ErrInternal).Once()

	w := suite.postJSON("/api/v1/imports/stays", dto.ImportStaysRequest{Rows: sampleRows()})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ImportHandlerTestSuite) TestImportStaysRejectsBodyWithoutRows() {
	w := suite.postJSON("/api/v1/imports/stays", gin.H{"batchNumber": 1})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ImportStays", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ImportHandlerTestSuite) TestDeleteImportedStays() {
	rows := sampleRows()
	suite.mockService.On("DeleteImportedStays", mock.Anything, rows).
		Return(&dto.DeletionResult{Processed: 1, Deleted: 1}, nil).Once()

	w := suite.postJSON("/api/v1/imports/stays/deletion", dto.ImportStaysRequest{Rows: rows})

	suite.Equal(http.StatusOK, w.Code)
	var result dto.DeletionResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal(1, result.Deleted)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ImportHandlerTestSuite) TestAnalyzeImportedStays() {
	rows := sampleRows()
	suite.mockService.On("AnalyzeImportedStays", mock.Anything, rows).
		Return(&dto.AnalysisResult{Imported: rows, Missing: []dto.RowRecord{}}, nil).Once()

	w := suite.postJSON("/api/v1/imports/stays/analysis", dto.ImportStaysRequest{Rows: rows})

	suite.Equal(http.StatusOK, w.Code)
	var result dto.AnalysisResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Len(result.Imported, 1)
	suite.Empty(result.Missing)
	suite.mockService.AssertExpectations(suite.T())
}

func buildTestWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestImportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ImportHandlerTestSuite))
}
