package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// engagementApp registers the engagement routes with a fixed acting user.
func engagementApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	app.Post("/api/posts/:id/like", s.LikePost)
	app.Post("/api/posts/:id/unlike", s.UnlikePost)
	app.Delete("/api/posts/:id/like", s.UnlikePost)
	app.Get("/api/feed", s.GetFeed)
	app.Get("/api/notifications", s.GetNotifications)
	app.Get("/api/notifications/unread-count", s.GetUnreadCount)
	app.Post("/api/notifications/read-all", s.MarkAllNotificationsRead)
	app.Post("/api/notifications/:id/read", s.MarkNotificationRead)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestLikeLifecycle(t *testing.T) {
	s := newTestServer(t)
	author := createServerUser(t, s, "author")
	fan := createServerUser(t, s, "fan")
	createServerPost(t, s, author.ID, "hello", time.Now())

	fanApp := engagementApp(s, fan.ID)
	authorApp := engagementApp(s, author.ID)

	url := "/api/posts/1/like"

	status, body := doRequest(t, fanApp, http.MethodPost, url)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Post liked", body["message"])

	// Liking twice changes nothing
	status, body = doRequest(t, fanApp, http.MethodPost, url)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Already liked", body["message"])

	status, body = doRequest(t, authorApp, http.MethodGet, "/api/notifications/unread-count")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["unread_count"])

	status, body = doRequest(t, fanApp, http.MethodPost, "/api/posts/1/unlike")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Like removed", body["message"])

	status, body = doRequest(t, fanApp, http.MethodPost, "/api/posts/1/unlike")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "No like to remove", body["message"])

	// Unliking does not retract the notification
	status, body = doRequest(t, authorApp, http.MethodGet, "/api/notifications/unread-count")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["unread_count"])
}

func TestLikeUnknownPost(t *testing.T) {
	s := newTestServer(t)
	fan := createServerUser(t, s, "fan")

	app := engagementApp(s, fan.ID)
	status, _ := doRequest(t, app, http.MethodPost, "/api/posts/999/like")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSelfLikeStaysSilent(t *testing.T) {
	s := newTestServer(t)
	author := createServerUser(t, s, "author")
	createServerPost(t, s, author.ID, "mine", time.Now())

	app := engagementApp(s, author.ID)

	status, body := doRequest(t, app, http.MethodPost, "/api/posts/1/like")
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Post liked", body["message"])

	status, body = doRequest(t, app, http.MethodGet, "/api/notifications/unread-count")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["unread_count"])
}

func TestDeleteLikeAlias(t *testing.T) {
	s := newTestServer(t)
	author := createServerUser(t, s, "author")
	fan := createServerUser(t, s, "fan")
	createServerPost(t, s, author.ID, "hello", time.Now())

	app := engagementApp(s, fan.ID)

	status, _ := doRequest(t, app, http.MethodPost, "/api/posts/1/like")
	assert.Equal(t, http.StatusCreated, status)

	status, body := doRequest(t, app, http.MethodDelete, "/api/posts/1/like")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Like removed", body["message"])
}

func TestFeedComposition(t *testing.T) {
	s := newTestServer(t)
	alice := createServerUser(t, s, "alice")
	bob := createServerUser(t, s, "bob")
	carol := createServerUser(t, s, "carol")
	dave := createServerUser(t, s, "dave")

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	createServerPost(t, s, bob.ID, "bob early", base)
	createServerPost(t, s, carol.ID, "carol late", base.Add(2*time.Hour))
	createServerPost(t, s, dave.ID, "dave unfollowed", base.Add(3*time.Hour))
	createServerPost(t, s, alice.ID, "alice own", base.Add(4*time.Hour))

	require.NoError(t, s.db.Create(&models.Follow{FollowerID: alice.ID, FolloweeID: bob.ID}).Error)
	require.NoError(t, s.db.Create(&models.Follow{FollowerID: alice.ID, FolloweeID: carol.ID}).Error)

	app := engagementApp(s, alice.ID)
	req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feed []models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))

	// Only followed authors, newest first. Alice's own posts are not included.
	require.Len(t, feed, 2)
	assert.Equal(t, "carol late", feed[0].Title)
	assert.Equal(t, "bob early", feed[1].Title)
}

func TestFeedEmptyWhenFollowingNobody(t *testing.T) {
	s := newTestServer(t)
	alice := createServerUser(t, s, "alice")
	bob := createServerUser(t, s, "bob")
	createServerPost(t, s, bob.ID, "unseen", time.Now())

	app := engagementApp(s, alice.ID)
	req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feed []models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	assert.Empty(t, feed)
}

func TestNotificationReadFlow(t *testing.T) {
	s := newTestServer(t)
	author := createServerUser(t, s, "author")
	fan := createServerUser(t, s, "fan")
	createServerPost(t, s, author.ID, "hello", time.Now())
	createServerPost(t, s, author.ID, "again", time.Now())

	fanApp := engagementApp(s, fan.ID)
	authorApp := engagementApp(s, author.ID)

	status, _ := doRequest(t, fanApp, http.MethodPost, "/api/posts/1/like")
	require.Equal(t, http.StatusCreated, status)
	status, _ = doRequest(t, fanApp, http.MethodPost, "/api/posts/2/like")
	require.Equal(t, http.StatusCreated, status)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	resp, err := authorApp.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var notifs []models.Notification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notifs))
	require.Len(t, notifs, 2)
	assert.Equal(t, models.VerbLikedPost, notifs[0].Verb)
	assert.Equal(t, fan.ID, notifs[0].ActorID)
	assert.False(t, notifs[0].Read)

	// The fan cannot mark the author's notification read
	status, _ = doRequest(t, fanApp, http.MethodPost, "/api/notifications/1/read")
	assert.Equal(t, http.StatusNotFound, status)

	status, body := doRequest(t, authorApp, http.MethodPost, "/api/notifications/1/read")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Notification marked as read", body["message"])

	status, body = doRequest(t, authorApp, http.MethodGet, "/api/notifications/unread-count")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["unread_count"])

	status, body = doRequest(t, authorApp, http.MethodPost, "/api/notifications/read-all")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["updated"])

	status, body = doRequest(t, authorApp, http.MethodGet, "/api/notifications/unread-count")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["unread_count"])
}
