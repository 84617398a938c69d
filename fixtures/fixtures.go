package fixtures

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/dagger983/Umpire11-Backend/models"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData seeds demo users, matches, contests, players and bots.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	users, err := f.generateUsers()
	if err != nil {
		return fmt.Errorf("failed to generate users: %w", err)
	}

	if err := f.generateMatches(); err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	contests, err := f.generateContests()
	if err != nil {
		return fmt.Errorf("failed to generate contests: %w", err)
	}

	if err := f.generatePlayers(contests); err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	if err := f.generateJoins(users, contests); err != nil {
		return fmt.Errorf("failed to generate joined contests: %w", err)
	}

	if err := f.generateBots(); err != nil {
		return fmt.Errorf("failed to generate bots: %w", err)
	}

	log.Println("Fixtures generation completed")
	return nil
}

func (f *Fixtures) generateUsers() ([]models.User, error) {
	names := []string{
		"arjun", "priya", "rahul", "sneha", "vikram",
		"ananya", "karthik", "divya", "rohan", "meera",
	}

	users := make([]models.User, 0, len(names))
	for i, name := range names {
		user := models.User{
			Username: name,
			Mobile:   fmt.Sprintf("98%08d", 10000000+i),
			Wallet:   float64(rand.Intn(20)) * 50,
		}
		if err := f.db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	log.Printf("Created %d users", len(users))
	return users, nil
}

func (f *Fixtures) generateMatches() error {
	pairs := [][2]string{
		{"CSK", "MI"},
		{"RCB", "KKR"},
		{"GT", "RR"},
		{"SRH", "DC"},
	}

	for i, pair := range pairs {
		match := models.UpcomingMatch{
			TeamA: pair[0],
			TeamB: pair[1],
			Time:  fmt.Sprintf("2024-05-%02dT19:30:00Z", 10+i),
			Title: fmt.Sprintf("%s vs %s", pair[0], pair[1]),
		}
		if err := f.db.Create(&match).Error; err != nil {
			return err
		}

		// The first two fixtures are also promoted on the featured carousel.
		if i < 2 {
			featured := models.FeaturedMatch{
				TeamA: pair[0],
				TeamB: pair[1],
				Time:  match.Time,
				Title: match.Title,
			}
			if err := f.db.Create(&featured).Error; err != nil {
				return err
			}
		}
	}

	log.Printf("Created %d upcoming and 2 featured matches", len(pairs))
	return nil
}

func (f *Fixtures) generateContests() ([]models.Contest, error) {
	seeds := []models.Contest{
		{Title: "IPL Mega Contest", Time: "2024-05-10T19:30:00Z", PrizePool: 100000, EntryFee: 49, SpotEntry: 1000, SpotLeft: 1000, Category: "mega"},
		{Title: "Head to Head", Time: "2024-05-10T19:30:00Z", PrizePool: 180, EntryFee: 99, SpotEntry: 2, SpotLeft: 2, Category: "h2h"},
		{Title: "Practice Contest", Time: "2024-05-11T19:30:00Z", PrizePool: 0, EntryFee: 0, SpotEntry: 500, SpotLeft: 500, Category: "practice"},
	}

	for i := range seeds {
		if err := f.db.Create(&seeds[i]).Error; err != nil {
			return nil, err
		}
	}

	log.Printf("Created %d contests", len(seeds))
	return seeds, nil
}

func (f *Fixtures) generatePlayers(contests []models.Contest) error {
	roles := []string{"Batsman", "Bowler", "All-Rounder", "Wicket-Keeper"}
	teams := []string{"CSK", "MI"}

	count := 0
	for _, contest := range contests {
		for i := 0; i < 22; i++ {
			player := models.Player{
				Name:         fmt.Sprintf("Player %d", i+1),
				Role:         roles[i%len(roles)],
				Team:         teams[i%len(teams)],
				Points:       float64(rand.Intn(120)),
				ContestTitle: contest.Title,
				ContestTeam:  fmt.Sprintf("%s vs %s", teams[0], teams[1]),
			}
			if err := f.db.Create(&player).Error; err != nil {
				return err
			}
			count++
		}
	}

	log.Printf("Created %d players", count)
	return nil
}

func (f *Fixtures) generateJoins(users []models.User, contests []models.Contest) error {
	if len(users) == 0 || len(contests) == 0 {
		return nil
	}

	count := 0
	for i := 0; i < 5; i++ {
		user := users[rand.Intn(len(users))]
		contest := contests[rand.Intn(len(contests))]

		entry := models.JoinedContest{
			ContestTitle: contest.Title,
			EntryFee:     contest.EntryFee,
			Username:     user.Username,
			Mobile:       user.Mobile,
			ContestTime:  contest.Time,
		}
		if err := f.db.Create(&entry).Error; err != nil {
			return err
		}
		count++
	}

	log.Printf("Created %d joined contests", count)
	return nil
}

func (f *Fixtures) generateBots() error {
	bots := []models.Bot{
		{Name: "RookieBot", Level: 1, Avatar: "https://cdn.umpire11.in/bots/rookie.png"},
		{Name: "ProBot", Level: 3, Avatar: "https://cdn.umpire11.in/bots/pro.png"},
		{Name: "LegendBot", Level: 5, Avatar: "https://cdn.umpire11.in/bots/legend.png"},
	}

	for i := range bots {
		if err := f.db.Create(&bots[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Created %d bots", len(bots))
	return nil
}
