package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"flight_reservation/database"
	"flight_reservation/model"
	"flight_reservation/router"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Reservation{}))
	database.DB = db

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func createReservation(t *testing.T, app *fiber.App) model.Reservation {
	t.Helper()
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/reservation/", fiber.Map{
		"name":         "John Smith",
		"flightNumber": "UA1234",
		"departure":    "Chicago",
		"destination":  "Denver",
		"date":         "12/25/2024",
		"seatNumber":   "12A",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data struct {
			Data model.Reservation `json:"data"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotZero(t, envelope.Data.Data.ID)
	return envelope.Data.Data
}

func TestCreateAndGetReservation(t *testing.T) {
	app := setupApp(t)

	created := createReservation(t, app)

	resp, err := app.Test(jsonRequest(http.MethodGet, fmt.Sprintf("/api/v1/reservation/%d", created.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data model.Reservation `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "John Smith", envelope.Data.Name)
	assert.Equal(t, "12/25/2024", envelope.Data.Date)
}

func TestCreateRejectsBadName(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/reservation/", fiber.Map{
		"name": "John3",
		"date": "12/25/2024",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateRejectsBadDate(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/reservation/", fiber.Map{
		"name": "John Smith",
		"date": "2024-12-25",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetMissingReservation(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/reservation/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBadIdParam(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/reservation/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEditReservation(t *testing.T) {
	app := setupApp(t)
	created := createReservation(t, app)

	resp, err := app.Test(jsonRequest(http.MethodPut, fmt.Sprintf("/api/v1/reservation/%d", created.ID), fiber.Map{
		"date": "01/02/2026",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodGet, fmt.Sprintf("/api/v1/reservation/%d", created.ID), nil))
	require.NoError(t, err)
	var envelope struct {
		Data model.Reservation `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "01/02/2026", envelope.Data.Date)
	assert.Equal(t, "John Smith", envelope.Data.Name)
}

func TestEditMissingReservation(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/v1/reservation/42", fiber.Map{
		"date": "01/02/2026",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteReservation(t *testing.T) {
	app := setupApp(t)
	created := createReservation(t, app)

	resp, err := app.Test(jsonRequest(http.MethodDelete, fmt.Sprintf("/api/v1/reservation/%d", created.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodGet, fmt.Sprintf("/api/v1/reservation/%d", created.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteMissingReservation(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/v1/reservation/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListAfterCreates(t *testing.T) {
	app := setupApp(t)
	for i := 0; i < 3; i++ {
		createReservation(t, app)
	}

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/reservation/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data model.ResponseCustom `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.EqualValues(t, 3, envelope.Data.TotalCount)
}

func TestReservationQR(t *testing.T) {
	app := setupApp(t)
	created := createReservation(t, app)

	resp, err := app.Test(jsonRequest(http.MethodGet, fmt.Sprintf("/api/v1/reservation/%d/qr", created.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, len(body) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
}
