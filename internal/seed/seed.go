// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder populates the database with generated test data.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Delete order respects foreign keys.
func (s *Seeder) ClearAll() error {
	tables := []string{"notifications", "likes", "comments", "posts", "follows", "profiles", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	log.Println("✓ Database cleared")
	return nil
}

// SeedSocialMesh creates users and a follow graph between them. Each user
// follows a random subset of the others; nobody follows themselves.
func (s *Seeder) SeedSocialMesh(numUsers int) ([]*models.User, error) {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ %d users created", len(users))

	edges := 0
	for _, follower := range users {
		// Follow roughly a third of the other users.
		for _, followee := range users {
			if follower.ID == followee.ID || s.rng.Intn(3) != 0 {
				continue
			}
			follow := &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
			if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error; err != nil {
				return nil, fmt.Errorf("create follow: %w", err)
			}
			edges++
		}
	}
	log.Printf("✓ %d follow edges created", edges)

	return users, nil
}

// SeedEngagement creates posts for the users along with comments, likes,
// and the notifications those likes and comments would have produced.
func (s *Seeder) SeedEngagement(users []*models.User, numPosts int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to create posts for")
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.rng.Intn(len(users))]
		post, err := s.CreatePost(author)
		if err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("✓ %d posts created", len(posts))

	likes, comments := 0, 0
	for _, post := range posts {
		for _, user := range users {
			// Sparse engagement keeps counts realistic.
			if s.rng.Intn(5) == 0 {
				created, err := s.likePost(user, post)
				if err != nil {
					return nil, err
				}
				if created {
					likes++
				}
			}
			if s.rng.Intn(10) == 0 {
				if err := s.commentOnPost(user, post); err != nil {
					return nil, err
				}
				comments++
			}
		}
	}
	log.Printf("✓ %d likes and %d comments created", likes, comments)

	return posts, nil
}

// likePost stores the like and, for non-self likes, the matching
// notification, mirroring what the API does at runtime.
func (s *Seeder) likePost(user *models.User, post *models.Post) (bool, error) {
	like := &models.Like{UserID: user.ID, PostID: post.ID}
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return false, fmt.Errorf("create like: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	if post.UserID != user.ID {
		n := &models.Notification{
			RecipientID: post.UserID,
			ActorID:     user.ID,
			Verb:        models.VerbLikedPost,
			TargetType:  models.TargetTypePost,
			TargetID:    post.ID,
			Read:        s.rng.Intn(2) == 0,
		}
		if err := s.db.Create(n).Error; err != nil {
			return false, fmt.Errorf("create notification: %w", err)
		}
	}
	return true, nil
}

func (s *Seeder) commentOnPost(user *models.User, post *models.Post) error {
	comment := &models.Comment{
		Content: gofakeit.Sentence(s.rng.Intn(15) + 3),
		UserID:  user.ID,
		PostID:  post.ID,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	if post.UserID != user.ID {
		n := &models.Notification{
			RecipientID: post.UserID,
			ActorID:     user.ID,
			Verb:        models.VerbCommentedPost,
			TargetType:  models.TargetTypePost,
			TargetID:    post.ID,
			Read:        s.rng.Intn(2) == 0,
		}
		if err := s.db.Create(n).Error; err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
	}
	return nil
}
