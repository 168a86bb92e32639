package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"menuzy-api/config"
	"menuzy-api/middleware"
	"menuzy-api/models"
	"menuzy-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setup gives each test its own named in-memory database and a router
// with the full route table.
func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// createUser inserts a user with password "password123" and returns it
// with a fresh token.
func createUser(t *testing.T, email string, role models.UserRole) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	user := models.User{
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     "Test " + email,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return user, token
}

func createRestaurant(t *testing.T, owner models.User, name string, lat, lng *float64) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		Name:       name,
		Address:    "1 Test Street",
		Latitude:   lat,
		Longitude:  lng,
		CategoryID: 1,
		OwnerID:    owner.ID,
		IsActive:   true,
	}
	require.NoError(t, config.DB.Create(&restaurant).Error)
	return restaurant
}

func createMenuCategory(t *testing.T, restaurantID uint, name string, order int) models.MenuCategory {
	t.Helper()
	category := models.MenuCategory{
		RestaurantID: restaurantID,
		Name:         name,
		DisplayOrder: order,
		IsActive:     true,
	}
	require.NoError(t, config.DB.Create(&category).Error)
	return category
}

func ptr(f float64) *float64 { return &f }
