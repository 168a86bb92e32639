package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"menuzy-api/config"
	"menuzy-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuperAdminSurfaceRequiresSuperAdmin(t *testing.T) {
	r := setup(t)
	_, adminToken := createUser(t, "admin@x.com", models.RoleRestaurantAdmin)
	_, custToken := createUser(t, "cust@x.com", models.RoleCustomer)

	assert.Equal(t, http.StatusForbidden, do(t, r, http.MethodGet, "/api/superadmin/dashboard", nil, adminToken).Code)
	assert.Equal(t, http.StatusForbidden, do(t, r, http.MethodGet, "/api/superadmin/dashboard", nil, custToken).Code)
}

func TestDashboardCounts(t *testing.T) {
	r := setup(t)
	_, token := createUser(t, "root@x.com", models.RoleSuperAdmin)
	owner, _ := createUser(t, "owner@x.com", models.RoleRestaurantAdmin)
	restaurant := createRestaurant(t, owner, "One", nil, nil)
	inactive := createRestaurant(t, owner, "Two", nil, nil)
	config.DB.Model(&models.Restaurant{}).Where("id = ?", inactive.ID).Update("is_active", false)
	reviewer, _ := createUser(t, "rev@x.com", models.RoleCustomer)
	require.NoError(t, config.DB.Create(&models.Review{
		RestaurantID: restaurant.ID, UserID: reviewer.ID, Rating: 5,
	}).Error)

	w := do(t, r, http.MethodGet, "/api/superadmin/dashboard", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["total_restaurants"]) // inactive one excluded
	assert.EqualValues(t, 3, body["total_users"])
	assert.EqualValues(t, 1, body["total_reviews"])
	assert.EqualValues(t, 10, body["total_categories"])
}

func TestCreateRestaurantProvisionsNewOwner(t *testing.T) {
	r := setup(t)
	_, token := createUser(t, "root@x.com", models.RoleSuperAdmin)

	w := do(t, r, http.MethodPost, "/api/superadmin/restaurants", map[string]interface{}{
		"name":        "Fresh Place",
		"address":     "2 Main St",
		"category_id": 1,
		"owner_email": "newowner@x.com",
		"owner_name":  "New Owner",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var owner models.User
	require.NoError(t, config.DB.Where("email = ?", "newowner@x.com").First(&owner).Error)
	assert.Equal(t, models.RoleRestaurantAdmin, owner.Role)
	assert.Nil(t, owner.PasswordHash)

	// Passwordless accounts have no local login path.
	login := do(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "newowner@x.com",
		"password": "anything",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, login.Code)
}

func TestCreateRestaurantEscalatesExistingOwner(t *testing.T) {
	r := setup(t)
	_, token := createUser(t, "root@x.com", models.RoleSuperAdmin)
	existing, _ := createUser(t, "regular@x.com", models.RoleCustomer)

	w := do(t, r, http.MethodPost, "/api/superadmin/restaurants", map[string]interface{}{
		"name":        "Promoted Place",
		"address":     "3 Main St",
		"category_id": 1,
		"owner_email": "regular@x.com",
		"owner_name":  "Regular",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var owner models.User
	require.NoError(t, config.DB.First(&owner, existing.ID).Error)
	assert.Equal(t, models.RoleRestaurantAdmin, owner.Role)

	var restaurant models.Restaurant
	require.NoError(t, config.DB.Where("name = ?", "Promoted Place").First(&restaurant).Error)
	assert.Equal(t, existing.ID, restaurant.OwnerID)

	var userCount int64
	config.DB.Model(&models.User{}).Count(&userCount)
	assert.EqualValues(t, 2, userCount) // no duplicate account created
}

func TestSuperAdminUpdatesAnyRestaurant(t *testing.T) {
	r := setup(t)
	_, token := createUser(t, "root@x.com", models.RoleSuperAdmin)
	owner, _ := createUser(t, "owner@x.com", models.RoleRestaurantAdmin)
	restaurant := createRestaurant(t, owner, "Old Name", nil, nil)

	w := do(t, r, http.MethodPut, fmt.Sprintf("/api/superadmin/restaurants/%d", restaurant.ID),
		map[string]interface{}{"name": "New Name"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Restaurant
	require.NoError(t, config.DB.First(&got, restaurant.ID).Error)
	assert.Equal(t, "New Name", got.Name)
}

func TestRestaurantUpdateEmptyFieldSet(t *testing.T) {
	r := setup(t)
	_, token := createUser(t, "root@x.com", models.RoleSuperAdmin)
	owner, _ := createUser(t, "owner@x.com", models.RoleRestaurantAdmin)
	restaurant := createRestaurant(t, owner, "Untouched", nil, nil)

	w := do(t, r, http.MethodPut, fmt.Sprintf("/api/superadmin/restaurants/%d", restaurant.ID),
		map[string]interface{}{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPut, "/api/superadmin/restaurants/9999",
		map[string]interface{}{"name": "Ghost"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var got models.Restaurant
	require.NoError(t, config.DB.First(&got, restaurant.ID).Error)
	assert.Equal(t, "Untouched", got.Name)
}

func TestCategoryCreateConflictOnDuplicateName(t *testing.T) {
	r := setup(t)
	_, token := createUser(t, "root@x.com", models.RoleSuperAdmin)

	w := do(t, r, http.MethodPost, "/api/superadmin/categories",
		map[string]interface{}{"name": "Pop-up"}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/api/superadmin/categories",
		map[string]interface{}{"name": "Pop-up"}, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCategoryDeleteRefusedWhileReferenced(t *testing.T) {
	r := setup(t)
	_, token := createUser(t, "root@x.com", models.RoleSuperAdmin)
	owner, _ := createUser(t, "owner@x.com", models.RoleRestaurantAdmin)
	createRestaurant(t, owner, "Uses Category One", nil, nil) // references category 1

	w := do(t, r, http.MethodDelete, "/api/superadmin/categories/1", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	config.DB.Model(&models.Category{}).Count(&count)
	assert.EqualValues(t, 10, count)

	// An unreferenced category deletes cleanly; a second delete is 404.
	require.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/api/superadmin/categories/2", nil, token).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, "/api/superadmin/categories/2", nil, token).Code)
}

func TestUserListingHidesPasswordHash(t *testing.T) {
	r := setup(t)
	_, token := createUser(t, "root@x.com", models.RoleSuperAdmin)

	w := do(t, r, http.MethodGet, "/api/superadmin/users", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	var root models.User
	require.NoError(t, config.DB.Where("email = ?", "root@x.com").First(&root).Error)
	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/superadmin/users/%d", root.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/superadmin/users/9999", nil, token).Code)
}
