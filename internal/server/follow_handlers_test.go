package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func followApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	app.Post("/api/users/:id/follow", s.FollowUser)
	app.Post("/api/users/:id/unfollow", s.UnfollowUser)
	app.Get("/api/users/:id/followers", s.GetFollowers)
	app.Get("/api/users/:id/following", s.GetFollowing)
	app.Get("/api/notifications/unread-count", s.GetUnreadCount)
	return app
}

func TestFollowLifecycle(t *testing.T) {
	s := newTestServer(t)
	alice := createServerUser(t, s, "alice")
	bob := createServerUser(t, s, "bob")

	aliceApp := followApp(s, alice.ID)
	bobApp := followApp(s, bob.ID)

	status, body := doRequest(t, aliceApp, http.MethodPost, "/api/users/2/follow")
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Now following bob", body["message"])

	// Bob is told once
	status, body = doRequest(t, bobApp, http.MethodGet, "/api/notifications/unread-count")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["unread_count"])

	// Repeating is acknowledged, not duplicated
	status, body = doRequest(t, aliceApp, http.MethodPost, "/api/users/2/follow")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Already following bob", body["message"])

	status, body = doRequest(t, bobApp, http.MethodGet, "/api/notifications/unread-count")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["unread_count"])

	status, body = doRequest(t, aliceApp, http.MethodPost, "/api/users/2/unfollow")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Unfollowed bob", body["message"])

	status, body = doRequest(t, aliceApp, http.MethodPost, "/api/users/2/unfollow")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Not following bob", body["message"])
}

func TestSelfFollowRejected(t *testing.T) {
	s := newTestServer(t)
	alice := createServerUser(t, s, "alice")

	app := followApp(s, alice.ID)
	status, _ := doRequest(t, app, http.MethodPost, "/api/users/1/follow")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestFollowUnknownUser(t *testing.T) {
	s := newTestServer(t)
	alice := createServerUser(t, s, "alice")

	app := followApp(s, alice.ID)
	status, _ := doRequest(t, app, http.MethodPost, "/api/users/99/follow")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestFollowerListings(t *testing.T) {
	s := newTestServer(t)
	alice := createServerUser(t, s, "alice")
	bob := createServerUser(t, s, "bob")
	carol := createServerUser(t, s, "carol")

	require.NoError(t, s.db.Create(&models.Follow{FollowerID: bob.ID, FolloweeID: alice.ID}).Error)
	require.NoError(t, s.db.Create(&models.Follow{FollowerID: carol.ID, FolloweeID: alice.ID}).Error)
	require.NoError(t, s.db.Create(&models.Follow{FollowerID: alice.ID, FolloweeID: bob.ID}).Error)

	app := followApp(s, alice.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/users/1/followers", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var followers []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&followers))
	require.Len(t, followers, 2)

	req = httptest.NewRequest(http.MethodGet, "/api/users/1/following", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var following []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&following))
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)
}
