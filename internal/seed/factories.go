package seed

import (
	"fmt"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

// seedPassword is the plaintext password shared by all seeded users.
const seedPassword = "SeedPassword1!"

// seedPasswordHash is computed once; bcrypt per user makes large seeds slow.
var seedPasswordHash []byte

func init() {
	seedPasswordHash, _ = bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.MinCost)
}

// CreateUser constructs and persists a sample user with a profile.
// Optional override functions may modify the generated user before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(seedPasswordHash),
		Profile: &models.Profile{
			Bio:    gofakeit.Sentence(10),
			Avatar: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		},
	}

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post with a realistic
// created_at spread over the last 90 days.
func (s *Seeder) CreatePost(author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:   gofakeit.Sentence(5),
		Content: gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:  author.ID,
	}

	daysBack := s.rng.Intn(90)
	hoursBack := s.rng.Intn(24)
	minsBack := s.rng.Intn(60)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}
