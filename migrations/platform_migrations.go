package migrations

import "gorm.io/gorm"

// GetPlatformMigrations defines the contest-platform tables. Table and column
// names are kept compatible with the legacy schema, including the mixed-case
// "paymentId" column on joined_contests.
func GetPlatformMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2024_06_01_000000_create_platform_tables",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS users (
						id BIGSERIAL PRIMARY KEY,
						username VARCHAR(255) NOT NULL,
						mobile VARCHAR(20) NOT NULL,
						wallet DECIMAL(12,2) DEFAULT 0,
						login_at TIMESTAMP NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_users_username_mobile ON users(username, mobile);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS upcoming_matches (
						id BIGSERIAL PRIMARY KEY,
						team_a VARCHAR(255) NOT NULL,
						team_b VARCHAR(255) NOT NULL,
						time VARCHAR(255),
						teama_logo VARCHAR(512),
						teamb_logo VARCHAR(512),
						title VARCHAR(255),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
					CREATE TABLE IF NOT EXISTS featured_matches (
						id BIGSERIAL PRIMARY KEY,
						team_a VARCHAR(255) NOT NULL,
						team_b VARCHAR(255) NOT NULL,
						time VARCHAR(255),
						teama_logo VARCHAR(512),
						teamb_logo VARCHAR(512),
						title VARCHAR(255),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS contest (
						id BIGSERIAL PRIMARY KEY,
						title VARCHAR(255) NOT NULL,
						time VARCHAR(255),
						prize_pool DECIMAL(12,2) DEFAULT 0,
						entry_fee DECIMAL(12,2) DEFAULT 0,
						spot_entry INT DEFAULT 0,
						spot_left INT DEFAULT 0,
						category VARCHAR(100),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
					CREATE TABLE IF NOT EXISTS joined_contests (
						id BIGSERIAL PRIMARY KEY,
						contest_title VARCHAR(255) NOT NULL,
						entry_fee DECIMAL(12,2) DEFAULT 0,
						username VARCHAR(255) NOT NULL,
						mobile VARCHAR(20) NOT NULL,
						"paymentId" VARCHAR(255),
						contest_time VARCHAR(255),
						joined_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_joined_contests_joined_at ON joined_contests(joined_at);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS player (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						role VARCHAR(100),
						team VARCHAR(255),
						points DECIMAL(10,2) DEFAULT 0,
						contest_title VARCHAR(255),
						contest_team VARCHAR(255),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS user_selected_team (
						id BIGSERIAL PRIMARY KEY,
						username VARCHAR(255) NOT NULL,
						mobile VARCHAR(20) NOT NULL,
						player1_id BIGINT DEFAULT 0, player1_name VARCHAR(255),
						player2_id BIGINT DEFAULT 0, player2_name VARCHAR(255),
						player3_id BIGINT DEFAULT 0, player3_name VARCHAR(255),
						player4_id BIGINT DEFAULT 0, player4_name VARCHAR(255),
						player5_id BIGINT DEFAULT 0, player5_name VARCHAR(255),
						player6_id BIGINT DEFAULT 0, player6_name VARCHAR(255),
						player7_id BIGINT DEFAULT 0, player7_name VARCHAR(255),
						player8_id BIGINT DEFAULT 0, player8_name VARCHAR(255),
						player9_id BIGINT DEFAULT 0, player9_name VARCHAR(255),
						player10_id BIGINT DEFAULT 0, player10_name VARCHAR(255),
						player11_id BIGINT DEFAULT 0, player11_name VARCHAR(255),
						captain_id BIGINT DEFAULT 0,
						captain_name VARCHAR(255),
						vice_captain_id BIGINT DEFAULT 0,
						vice_captain_name VARCHAR(255),
						contest_title VARCHAR(255) NOT NULL,
						contest_entryfee DECIMAL(12,2) DEFAULT 0,
						total_points DECIMAL(10,2) DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW()
					);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS result (
						id BIGSERIAL PRIMARY KEY,
						contest_title VARCHAR(255) NOT NULL,
						username VARCHAR(255) NOT NULL,
						mobile VARCHAR(20),
						points DECIMAL(10,2) DEFAULT 0,
						rank INT DEFAULT 0,
						winnings DECIMAL(12,2) DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
				`).Error; err != nil {
					return err
				}

				return db.Exec(`
					CREATE TABLE IF NOT EXISTS bots (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						level INT DEFAULT 1,
						avatar VARCHAR(512)
					);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				for _, table := range []string{
					"bots", "result", "user_selected_team", "player",
					"joined_contests", "contest", "featured_matches",
					"upcoming_matches", "users",
				} {
					if err := db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE").Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
