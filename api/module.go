package api

import (
	"log"

	"github.com/dagger983/Umpire11-Backend/cron"
	"github.com/dagger983/Umpire11-Backend/handlers"
	"github.com/dagger983/Umpire11-Backend/payment"
	"github.com/dagger983/Umpire11-Backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module wires every service and handler to one database handle.
type Module struct {
	UserHandler          *handlers.UserHandler
	MatchHandler         *handlers.MatchHandler
	ContestHandler       *handlers.ContestHandler
	JoinedContestHandler *handlers.JoinedContestHandler
	PlayerHandler        *handlers.PlayerHandler
	RosterHandler        *handlers.RosterHandler
	ResultHandler        *handlers.ResultHandler
	BotHandler           *handlers.BotHandler
	StatsHandler         *handlers.StatsHandler
	PaymentHandler       *handlers.PaymentHandler
	ScoringService       *services.ScoringService
	Scheduler            *cron.Scheduler
	db                   *gorm.DB
}

func NewModule(db *gorm.DB, paymentService *payment.Service) *Module {
	userService := services.NewUserService(db)
	matchService := services.NewMatchService(db)
	contestService := services.NewContestService(db)
	joinedService := services.NewJoinedContestService(db)
	playerService := services.NewPlayerService(db)
	rosterService := services.NewRosterService(db)
	resultService := services.NewResultService(db)
	botService := services.NewBotService(db)
	statsService := services.NewStatsService(db)

	scoringService := services.NewScoringService(db)
	scheduler := cron.NewScheduler(scoringService)

	return &Module{
		UserHandler:          handlers.NewUserHandler(userService),
		MatchHandler:         handlers.NewMatchHandler(matchService),
		ContestHandler:       handlers.NewContestHandler(contestService),
		JoinedContestHandler: handlers.NewJoinedContestHandler(joinedService),
		PlayerHandler:        handlers.NewPlayerHandler(playerService),
		RosterHandler:        handlers.NewRosterHandler(rosterService),
		ResultHandler:        handlers.NewResultHandler(resultService),
		BotHandler:           handlers.NewBotHandler(botService),
		StatsHandler:         handlers.NewStatsHandler(statsService),
		PaymentHandler:       handlers.NewPaymentHandler(paymentService),
		ScoringService:       scoringService,
		Scheduler:            scheduler,
		db:                   db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.POST("", m.UserHandler.CreateUser)
		users.GET("", m.UserHandler.GetUsers)
		users.GET("/:id", m.UserHandler.GetUser)
		users.PUT("/:id", m.UserHandler.UpdateUser)
		users.DELETE("/:id", m.UserHandler.DeleteUser)
		users.POST("/:id/login", m.UserHandler.RecordLogin)
	}

	upcoming := r.Group("/upcoming-matches")
	{
		upcoming.POST("", m.MatchHandler.CreateUpcoming)
		upcoming.GET("", m.MatchHandler.GetUpcoming)
		upcoming.GET("/:id", m.MatchHandler.GetUpcomingByID)
		upcoming.PUT("/:id", m.MatchHandler.UpdateUpcoming)
		upcoming.DELETE("/:id", m.MatchHandler.DeleteUpcoming)
	}

	featured := r.Group("/featured-matches")
	{
		featured.POST("", m.MatchHandler.CreateFeatured)
		featured.GET("", m.MatchHandler.GetFeatured)
		featured.GET("/:id", m.MatchHandler.GetFeaturedByID)
		featured.PUT("/:id", m.MatchHandler.UpdateFeatured)
		featured.DELETE("/:id", m.MatchHandler.DeleteFeatured)
	}

	contests := r.Group("/contests")
	{
		contests.POST("", m.ContestHandler.CreateContest)
		contests.GET("", m.ContestHandler.GetContests)
		contests.GET("/:id", m.ContestHandler.GetContest)
		contests.PUT("/:id", m.ContestHandler.UpdateContest)
		contests.DELETE("/:id", m.ContestHandler.DeleteContest)
		contests.POST("/:id/join", m.ContestHandler.JoinContest)
	}

	joined := r.Group("/joined_contests")
	{
		joined.POST("", m.JoinedContestHandler.CreateEntry)
		joined.GET("", m.JoinedContestHandler.GetEntries)
		joined.GET("/:id", m.JoinedContestHandler.GetEntry)
		joined.PUT("/:id", m.JoinedContestHandler.UpdateEntry)
		joined.DELETE("/:id", m.JoinedContestHandler.DeleteEntry)
	}

	players := r.Group("/players")
	{
		players.POST("", m.PlayerHandler.CreatePlayer)
		players.GET("", m.PlayerHandler.GetPlayers)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.PUT("/:id", m.PlayerHandler.UpdatePlayer)
		players.DELETE("/:id", m.PlayerHandler.DeletePlayer)
	}

	roster := r.Group("/user_selected_team")
	{
		roster.POST("/players", m.RosterHandler.SubmitRoster)
		roster.GET("/:id", m.RosterHandler.GetRoster)
		roster.PUT("/:id", m.RosterHandler.UpdateRoster)
		roster.DELETE("/:id", m.RosterHandler.DeleteRoster)
	}
	// Listing alias kept from the original client.
	r.GET("/user-players", m.RosterHandler.GetRosters)

	results := r.Group("/results")
	{
		results.POST("", m.ResultHandler.CreateResult)
		results.GET("", m.ResultHandler.GetResults)
		results.GET("/:id", m.ResultHandler.GetResult)
		results.PUT("/:id", m.ResultHandler.UpdateResult)
		results.DELETE("/:id", m.ResultHandler.DeleteResult)
	}

	r.GET("/api/bots", m.BotHandler.GetBots)
	r.POST("/create-order", m.PaymentHandler.CreateOrder)
	r.GET("/stats", m.StatsHandler.GetStats)
}

// StartScheduler starts the roster scoring cron.
func (m *Module) StartScheduler() error {
	log.Println("Starting scoring scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the roster scoring cron.
func (m *Module) StopScheduler() {
	log.Println("Stopping scoring scheduler...")
	m.Scheduler.Stop()
}
