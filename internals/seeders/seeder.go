package seeders

import (
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"confku_backend/internals/configs"
	"confku_backend/internals/constants"
	conferenceModel "confku_backend/internals/features/conference/model"
	authService "confku_backend/internals/features/users/auth/service"
	userModel "confku_backend/internals/features/users/model"
)

// Run membersihkan data conference lama lalu menanam ulang: akun
// SUPER_ADMIN (kredensial dari env) dan satu pohon ICICYTA 2024
// lengkap (conference → schedules → rooms → track → sessions) lewat
// nested association create.
func Run(db *gorm.DB) error {
	if err := seedSuperAdmin(db); err != nil {
		return err
	}
	return seedConferenceTree(db)
}

func seedSuperAdmin(db *gorm.DB) error {
	email := configs.GetEnv("SEED_ADMIN_EMAIL", "superadmin@confku.local")
	name := configs.GetEnv("SEED_ADMIN_NAME", "super admin")
	password := configs.GetEnv("SEED_ADMIN_PASSWORD", "Sup3rAdmin!")

	var exists int64
	if err := db.Unscoped().Model(&userModel.UserModel{}).
		Where("email = ?", email).
		Count(&exists).Error; err != nil {
		return err
	}
	if exists > 0 {
		log.Printf("[INFO] Admin already exists: %s", email)
		return nil
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		return err
	}

	admin := userModel.UserModel{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     constants.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("[INFO] Admin seeded: %s", admin.Email)
	return nil
}

func seedConferenceTree(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		log.Println("[INFO] Cleaning old conference data...")
		// urutan terbalik dari dependensi FK
		for _, m := range []any{
			&conferenceModel.TrackSessionModel{},
			&conferenceModel.RoomModel{},
			&conferenceModel.TrackModel{},
			&conferenceModel.ScheduleModel{},
			&conferenceModel.ConferenceScheduleModel{},
		} {
			if err := tx.Unscoped().Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}

		log.Println("[INFO] Creating ConferenceSchedule tree...")

		notes := "Link Zoom Main Room & Parallel Session : https://telkomuniversity-ac-id.zoom.us/j/97324049829"
		noShow := "Please take note that IEEE has a strict policy on No-Show. Therefore, if your paper is accepted, one of the authors OR their representatives MUST PRESENT their paper at the conference."

		conference := conferenceModel.ConferenceScheduleModel{
			Name:               "ICICyTA 2024 Conference Program",
			Description:        "17th - 19th December 2024 (Hybrid)",
			Year:               "2024",
			StartDate:          seedDate(2024, 12, 17),
			EndDate:            seedDate(2024, 12, 19),
			Type:               constants.ConferenceICICYTA,
			IsActive:           true,
			ContactEmail:       "icicyta@telkomuniversity.ac.id",
			TimezoneIana:       "Asia/Makassar",
			OnsitePresentation: "THE EVITEL RESORT UBUD, BALI, INDONESIA (2nd Floor)",
			OnlinePresentation: "ZOOM MEETING",
			Notes:              &notes,
			NoShowPolicy:       &noShow,
			Schedules: []conferenceModel.ScheduleModel{
				{
					Date:      seedDate(2024, 12, 17),
					Type:      constants.ScheduleTalk,
					StartTime: strPtr("08:30"),
					EndTime:   strPtr("09:00"),
					Notes:     strPtr("Open Registration Onsite Day 1"),
					Rooms: []conferenceModel.RoomModel{
						{
							Name:        "Main Room",
							Type:        constants.RoomMain,
							Description: strPtr("Open Registration Onsite Day 1"),
						},
					},
				},
				{
					Date:      seedDate(2024, 12, 17),
					Type:      constants.ScheduleTalk,
					StartTime: strPtr("09:00"),
					EndTime:   strPtr("09:10"),
					Notes:     strPtr(`Live dance "Tari Sekar Jagad"`),
					Rooms: []conferenceModel.RoomModel{
						{
							Name:        "Main Room",
							Type:        constants.RoomMain,
							Description: strPtr(`Live dance "Tari Sekar Jagad"`),
						},
					},
				},
				{
					Date:      seedDate(2024, 12, 17),
					Type:      constants.ScheduleTalk,
					StartTime: strPtr("13:00"),
					EndTime:   strPtr("16:00"),
					Notes:     strPtr("Parallel Session Day 1"),
					Rooms: []conferenceModel.RoomModel{
						{
							Name:       "Parallel Room 1",
							Identifier: strPtr("PR-1"),
							Type:       constants.RoomParallel,
							StartTime:  strPtr("13:00"),
							EndTime:    strPtr("16:00"),
							Track: &conferenceModel.TrackModel{
								Name:        "Track 1 - Data Science",
								Description: strPtr("Data science and analytics papers"),
								TrackSessions: []conferenceModel.TrackSessionModel{
									{
										PaperID:   "1570100001",
										Title:     "Sentiment Analysis on Indonesian Social Media",
										Authors:   "A. Pratama; B. Wijaya",
										Mode:      constants.SessionOnline,
										StartTime: "13:00",
										EndTime:   "13:20",
									},
									{
										PaperID:   "1570100002",
										Title:     "Time Series Forecasting for Energy Demand",
										Authors:   "C. Lestari; D. Nugraha",
										Mode:      constants.SessionOffline,
										StartTime: "13:20",
										EndTime:   "13:40",
									},
								},
							},
						},
					},
				},
				{
					Date:  seedDate(2024, 12, 19),
					Type:  constants.ScheduleOneDayActivity,
					Notes: strPtr("City tour & cultural program"),
				},
			},
		}

		if err := tx.Create(&conference).Error; err != nil {
			return err
		}

		log.Println("[INFO] Conference schedule seeded.")
		return nil
	})
}

func seedDate(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func strPtr(s string) *string {
	return &s
}
