package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growling-tummy/internal/foodcart"
	"growling-tummy/internal/foodcart/repository/memory"
	"growling-tummy/internal/foodcart/usecase"
	"growling-tummy/internal/model"
	"growling-tummy/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type listEnvelope struct {
	ErrorCode int      `json:"error_code"`
	Data      listResp `json:"data"`
}

func newTestRouter(uc foodcart.UseCase) *gin.Engine {
	e := gin.New()
	RegisterRoutes(e.Group("/api/v1/foodcarts"), New(log.NewNop(), uc))
	return e
}

func get(e *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestList(t *testing.T) {
	l := log.NewNop()
	e := newTestRouter(usecase.New(memory.New(l), l))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantNames  []string
	}{
		{
			name:       "No filters",
			target:     "/api/v1/foodcarts",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Thai Delight", "Taco Heaven", "Spice of India", "Dragon Wok"},
		},
		{
			name:       "Cuisine is case-insensitive",
			target:     "/api/v1/foodcarts?cuisine=indian",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Spice of India"},
		},
		{
			name:       "Vegan",
			target:     "/api/v1/foodcarts?dietary_preference=vegan",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Thai Delight", "Spice of India"},
		},
		{
			name:       "No match is an empty list",
			target:     "/api/v1/foodcarts?cuisine=Mexican&dining_option=dine-in",
			wantStatus: http.StatusOK,
			wantNames:  []string{},
		},
		{
			name:       "Unknown dining option",
			target:     "/api/v1/foodcarts?dining_option=drive-thru",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(e, tt.target)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp listEnvelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			names := make([]string, 0, len(resp.Data.Carts))
			for _, c := range resp.Data.Carts {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, len(tt.wantNames), resp.Data.Total)
		})
	}
}

type failingUseCase struct {
	foodcart.UseCase
}

func (failingUseCase) FindByDiningOptions(ctx context.Context, input foodcart.FindByDiningOptionsInput) (foodcart.FindCartsOutput, error) {
	return foodcart.FindCartsOutput{}, errors.New("dataset unavailable")
}

func (failingUseCase) List(ctx context.Context) ([]model.FoodCart, error) {
	return nil, errors.New("dataset unavailable")
}

func TestListInternalError(t *testing.T) {
	e := newTestRouter(failingUseCase{})

	for _, target := range []string{"/api/v1/foodcarts", "/api/v1/foodcarts?cuisine=thai"} {
		w := get(e, target)
		assert.Equal(t, http.StatusInternalServerError, w.Code, target)
		assert.NotContains(t, w.Body.String(), "dataset unavailable", target)
	}
}
