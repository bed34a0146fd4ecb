package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"parkhub/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFacilityHandler_GetOccupancy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		allocator := mocks.NewMockISpotAllocatorUseCase(ctrl)
		h := NewFacilityHandler(allocator)

		r := gin.New()
		r.GET("/v1/parking/occupancy", h.GetOccupancy)

		allocator.EXPECT().TotalCount(gomock.Any()).Return(0, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/parking/occupancy", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		allocator := mocks.NewMockISpotAllocatorUseCase(ctrl)
		h := NewFacilityHandler(allocator)

		r := gin.New()
		r.GET("/v1/parking/occupancy", h.GetOccupancy)

		allocator.EXPECT().TotalCount(gomock.Any()).Return(5, nil)
		allocator.EXPECT().AvailableCount(gomock.Any()).Return(3, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/parking/occupancy", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["total_spots"] != float64(5) || body["available_spots"] != float64(3) || body["occupied_spots"] != float64(2) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
