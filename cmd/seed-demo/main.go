package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/edulink/edulink-backend/internal/config"
	"github.com/edulink/edulink-backend/internal/database"
	"github.com/edulink/edulink-backend/internal/logger"
	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/repository"
	"github.com/edulink/edulink-backend/internal/service"
)

// Seeds a tenant with a standard six-day week, an eight-slot period
// grid and a handful of classrooms, so a fresh install has something to
// compose timetables from.
func main() {
	var adminID int
	flag.IntVar(&adminID, "admin", 0, "Tenant admin id to seed")
	flag.Parse()

	if adminID < 1 {
		fmt.Println("Usage: seed-demo -admin <id>")
		return
	}

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	weekDayRepo := repository.NewWeekDayRepository(pool)
	timePeriodRepo := repository.NewTimePeriodRepository(pool)
	classroomRepo := repository.NewClassroomRepository(pool)

	// ─── Week Days ─────────────────────────────────────────────────────
	days := []model.WeekDay{
		{Name: "Monday", ShortName: "Mon", SortOrder: 1},
		{Name: "Tuesday", ShortName: "Tue", SortOrder: 2},
		{Name: "Wednesday", ShortName: "Wed", SortOrder: 3},
		{Name: "Thursday", ShortName: "Thu", SortOrder: 4},
		{Name: "Friday", ShortName: "Fri", SortOrder: 5},
		{Name: "Saturday", ShortName: "Sat", SortOrder: 6},
	}
	for i := range days {
		days[i].AdminID = adminID
		days[i].IsActive = true
		if err := weekDayRepo.Create(ctx, &days[i]); err != nil {
			log.Fatal().Err(err).Str("day", days[i].Name).Msg("Failed to seed week day")
		}
	}
	fmt.Printf("Seeded %d week days\n", len(days))

	// ─── Time Periods ──────────────────────────────────────────────────
	type slot struct {
		name       string
		start, end string
		kind       string
	}
	slots := []slot{
		{"Period 1", "08:00", "08:45", model.PeriodKindClass},
		{"Period 2", "08:45", "09:30", model.PeriodKindClass},
		{"Period 3", "09:30", "10:15", model.PeriodKindClass},
		{"Morning Break", "10:15", "10:30", model.PeriodKindBreak},
		{"Period 4", "10:30", "11:15", model.PeriodKindClass},
		{"Period 5", "11:15", "12:00", model.PeriodKindClass},
		{"Lunch Break", "12:00", "12:45", model.PeriodKindBreak},
		{"Period 6", "12:45", "13:30", model.PeriodKindClass},
	}
	for i, s := range slots {
		duration, err := service.Duration(s.start, s.end)
		if err != nil {
			log.Fatal().Err(err).Str("period", s.name).Msg("Invalid seed period")
		}
		p := &model.TimePeriod{
			AdminID:         adminID,
			Name:            s.name,
			StartTime:       s.start,
			EndTime:         s.end,
			DurationMinutes: duration,
			Kind:            s.kind,
			SortOrder:       i + 1,
		}
		if err := timePeriodRepo.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Str("period", s.name).Msg("Failed to seed time period")
		}
	}
	fmt.Printf("Seeded %d time periods\n", len(slots))

	// ─── Classrooms ────────────────────────────────────────────────────
	rooms := []model.Classroom{
		{Name: "Room 101", Capacity: 40, Floor: 1, Building: "Main Block", RoomType: "classroom"},
		{Name: "Room 102", Capacity: 40, Floor: 1, Building: "Main Block", RoomType: "classroom"},
		{Name: "Room 201", Capacity: 35, Floor: 2, Building: "Main Block", RoomType: "classroom"},
		{Name: "Science Lab", Capacity: 30, Floor: 2, Building: "Annex", RoomType: "laboratory"},
		{Name: "Computer Lab", Capacity: 30, Floor: 1, Building: "Annex", RoomType: "laboratory"},
	}
	for i := range rooms {
		rooms[i].AdminID = adminID
		rooms[i].IsAvailable = true
		if err := classroomRepo.Create(ctx, &rooms[i]); err != nil {
			log.Fatal().Err(err).Str("room", rooms[i].Name).Msg("Failed to seed classroom")
		}
	}
	fmt.Printf("Seeded %d classrooms\n", len(rooms))
}
