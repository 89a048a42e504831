package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	conferenceScheduleRoute "confku_backend/internals/features/conference/conference_schedule/route"
	roomRoute "confku_backend/internals/features/conference/room/route"
	scheduleRoute "confku_backend/internals/features/conference/schedule/route"
	trackRoute "confku_backend/internals/features/conference/track/route"
	trackSessionRoute "confku_backend/internals/features/conference/track_session/route"
	authRoute "confku_backend/internals/features/users/auth/route"
	userRoute "confku_backend/internals/features/users/user/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api/v1")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Setting up ConferenceScheduleRoutes...")
	conferenceScheduleRoute.ConferenceScheduleRoutes(api, db)

	log.Println("[INFO] Setting up ScheduleRoutes...")
	scheduleRoute.ScheduleRoutes(api, db)

	log.Println("[INFO] Setting up RoomRoutes...")
	roomRoute.RoomRoutes(api, db)

	log.Println("[INFO] Setting up TrackRoutes...")
	trackRoute.TrackRoutes(api, db)

	log.Println("[INFO] Setting up TrackSessionRoutes...")
	trackSessionRoute.TrackSessionRoutes(api, db)
}
