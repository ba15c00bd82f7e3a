package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"pawspace/internal/database"
	"pawspace/internal/domain"
	"pawspace/internal/middleware"
	"pawspace/internal/modules/auth"
	"pawspace/internal/modules/availability"
	"pawspace/internal/modules/booking"
	jwtsvc "pawspace/internal/pkg/jwt"
	"pawspace/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	// Use in-memory SQLite for testing
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db), "Failed to migrate test database")

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	logger := zerolog.Nop()

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	availabilityHandler := availability.NewHandler(availability.NewService(bookingRepo, roomRepo, logger))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, logger))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterRoutes(v1)
	availabilityHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(jwtService))
	bookingHandler.RegisterRoutes(protected)

	// Seed the room inventory the availability estimate reads
	ctx := t.Context()
	for i := 0; i < 3; i++ {
		room := &domain.Room{Name: fmt.Sprintf("medium-%d", i+1), Size: domain.RoomMedium, IsActive: true}
		require.NoError(t, roomRepo.Create(ctx, room))
	}
	small := &domain.Room{Name: "small-1", Size: domain.RoomSmall, IsActive: true}
	require.NoError(t, roomRepo.Create(ctx, small))

	return &E2ETestSuite{router: r, db: db}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	t.Helper()
	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp),
		"Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	return &resp
}

func (s *E2ETestSuite) registerAndLogin(t *testing.T, email string) string {
	t.Helper()

	w := s.makeRequest("POST", "/api/v1/auth/register", map[string]interface{}{
		"email":    email,
		"password": "Password123!",
		"name":     "Jane Doe",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	w = s.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    email,
		"password": "Password123!",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	token, _ := resp.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func ownerDetails() map[string]interface{} {
	return map[string]interface{}{
		"name":           "Jane Doe",
		"email":          "jane@example.com",
		"address":        "123 Rizal St, Makati",
		"contact_number": "09171234567",
	}
}

func boardingPet() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Bruno",
		"age":          "3 years",
		"pet_type":     "dog",
		"breed":        "beagle",
		"vaccinated":   "yes",
		"size":         "medium",
		"service_type": "boarding",
		"boarding": map[string]interface{}{
			"room_size":      "medium",
			"boarding_type":  "overnight",
			"check_in_date":  "2025-06-10",
			"check_in_time":  "09:00",
			"check_out_date": "2025-06-12",
			"check_out_time": "17:00",
			"meal_instructions": map[string]interface{}{
				"breakfast": map[string]interface{}{"time": "07:30", "food": "kibble"},
			},
		},
	}
}

func groomingPet(serviceTime string) map[string]interface{} {
	return map[string]interface{}{
		"name":         "Mingming",
		"age":          "8 months",
		"pet_type":     "cat",
		"breed":        "siamese",
		"vaccinated":   "yes",
		"size":         "small",
		"service_type": "grooming",
		"grooming": map[string]interface{}{
			"service_variant": "cat_spa",
			"service_date":    "2025-06-15",
			"service_time":    serviceTime,
		},
	}
}

func TestFlow_RegistrationAndAuth(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("POST /auth/register", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/register", map[string]interface{}{
			"email":    "client@example.com",
			"password": "Password123!",
			"name":     "Jane Doe",
		}, "")

		assert.Equal(t, http.StatusCreated, w.Code, "Expected 201 Created")

		resp := parseResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data["token"])
	})

	t.Run("POST /auth/register duplicate email", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/register", map[string]interface{}{
			"email":    "client@example.com",
			"password": "Password123!",
			"name":     "Jane Doe",
		}, "")

		assert.Equal(t, http.StatusConflict, w.Code)

		resp := parseResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "EMAIL_TAKEN", resp.Error.Code)
	})

	t.Run("POST /auth/login", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
			"email":    "client@example.com",
			"password": "Password123!",
		}, "")

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data["token"])
	})

	t.Run("POST /auth/login wrong password", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
			"email":    "client@example.com",
			"password": "wrong-password",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestFlow_BookingLifecycle(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.registerAndLogin(t, "booker@example.com")

	t.Run("GET /availability before booking", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/availability?room_size=medium&start=2025-06-10&end=2025-06-12", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.True(t, resp.Success)

		avail := resp.Data["availability"].(map[string]interface{})
		assert.Equal(t, float64(3), avail["total_rooms"])
		assert.Equal(t, float64(3), avail["available_rooms"])
		assert.Equal(t, "estimate", avail["source"])
	})

	t.Run("POST /bookings without token", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/bookings", map[string]interface{}{
			"owner_details":  ownerDetails(),
			"pets":           []interface{}{boardingPet()},
			"total_amounts":  []float64{1200},
			"confirmed_info": true,
		}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	var bookingID string
	t.Run("POST /bookings", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/bookings", map[string]interface{}{
			"owner_details":     ownerDetails(),
			"pets":              []interface{}{boardingPet(), groomingPet("10:00")},
			"total_amounts":     []float64{1200, 450},
			"discounts_applied": []float64{0, 0},
			"confirmed_info":    true,
		}, token)

		assert.Equal(t, http.StatusCreated, w.Code, "booking failed: %s", w.Body.String())

		resp := parseResponse(t, w)
		assert.True(t, resp.Success)

		result := resp.Data["booking"].(map[string]interface{})
		assert.Equal(t, true, result["success"])
		bookingID, _ = result["booking_id"].(string)
		assert.NotEmpty(t, bookingID)
	})

	t.Run("GET /bookings", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/bookings", nil, token)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.True(t, resp.Success)

		rows := resp.Data["bookings"].([]interface{})
		require.Len(t, rows, 1)
		row := rows[0].(map[string]interface{})
		assert.Equal(t, bookingID, row["booking_id"])
		assert.Equal(t, "pending", row["status"])
		assert.Equal(t, "mixed", row["service_summary"])
		assert.Equal(t, float64(2), row["pet_count"])
	})

	t.Run("availability counts only confirmed stays", func(t *testing.T) {
		// the fresh booking is still pending
		w := suite.makeRequest("GET", "/api/v1/availability?room_size=medium&start=2025-06-10&end=2025-06-12", nil, "")
		resp := parseResponse(t, w)
		avail := resp.Data["availability"].(map[string]interface{})
		assert.Equal(t, float64(3), avail["available_rooms"])

		repo := repository.NewBookingRepository(suite.db)
		require.NoError(t, repo.UpdateStatus(t.Context(), bookingID, domain.BookingConfirmed))

		w = suite.makeRequest("GET", "/api/v1/availability?room_size=medium&start=2025-06-10&end=2025-06-12", nil, "")
		resp = parseResponse(t, w)
		avail = resp.Data["availability"].(map[string]interface{})
		assert.Equal(t, float64(1), avail["occupied_count"])
		assert.Equal(t, float64(2), avail["available_rooms"])
	})
}

func TestFlow_BookingValidation(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.registerAndLogin(t, "strict@example.com")

	t.Run("grooming outside business hours", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/bookings", map[string]interface{}{
			"owner_details":  ownerDetails(),
			"pets":           []interface{}{groomingPet("19:00")},
			"total_amounts":  []float64{450},
			"confirmed_info": true,
		}, token)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := parseResponse(t, w)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

		details := resp.Error.Details.(map[string]interface{})
		assert.Contains(t, details, "pets[0].service_time")
	})

	t.Run("non-positive total", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/bookings", map[string]interface{}{
			"owner_details":  ownerDetails(),
			"pets":           []interface{}{groomingPet("10:00")},
			"total_amounts":  []float64{-50},
			"confirmed_info": true,
		}, token)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := parseResponse(t, w)
		details := resp.Error.Details.(map[string]interface{})
		assert.Contains(t, details, "pricing")
	})

	t.Run("unconfirmed submission", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/bookings", map[string]interface{}{
			"owner_details": ownerDetails(),
			"pets":          []interface{}{groomingPet("10:00")},
			"total_amounts": []float64{450},
		}, token)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := parseResponse(t, w)
		details := resp.Error.Details.(map[string]interface{})
		assert.Contains(t, details, "confirmation")
	})

	t.Run("nothing persisted after rejections", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/bookings", nil, token)
		resp := parseResponse(t, w)
		rows, _ := resp.Data["bookings"].([]interface{})
		assert.Empty(t, rows)
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
