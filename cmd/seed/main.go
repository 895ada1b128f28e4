// Command main runs the database seeder for Ripple.
package main

import (
	"flag"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d posts, clean=%v\n", *numUsers, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedSocialMesh(*numUsers)
	if err != nil {
		log.Fatalf("❌ User seeding failed: %v", err)
	}
	if _, err := s.SeedEngagement(users, *numPosts); err != nil {
		log.Fatalf("❌ Engagement seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Printf("📧 All test users have the password: %s", "SeedPassword1!")
}
