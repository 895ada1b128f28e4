package server

import (
	"fmt"
	"testing"
	"time"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/service"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server against an in-memory database with no Redis.
// Handler tests register the routes they exercise on a plain app.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	cfg := &config.Config{
		JWTSecret: "test-secret-0123456789abcdef0123",
		Port:      "8080",
		Env:       "test",
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	s := &Server{
		config:    cfg,
		db:        db,
		userRepo:  userRepo,
		postRepo:  postRepo,
		likeRepo:  likeRepo,
		notifRepo: notifRepo,
	}
	s.engagementService = service.NewEngagementService(postRepo, followRepo, likeRepo, notifRepo, nil)
	s.userService = service.NewUserService(userRepo)
	s.postService = service.NewPostService(postRepo)
	s.commentService = service.NewCommentService(commentRepo, postRepo, s.engagementService)
	s.followService = service.NewFollowService(followRepo, userRepo, s.engagementService)
	s.notificationService = service.NewNotificationService(notifRepo)

	return s
}

func createServerUser(t *testing.T, s *Server, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed",
		Profile:  &models.Profile{},
	}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

func createServerPost(t *testing.T, s *Server, authorID uint, title string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:     title,
		Content:   "content of " + title,
		UserID:    authorID,
		CreatedAt: createdAt,
	}
	require.NoError(t, s.db.Create(post).Error)
	return post
}
