package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"confku_backend/internals/constants"
	"confku_backend/internals/features/conference/model"
	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

/* =========================================================
   LIST — schema validasi + query config
   ========================================================= */

var ListSchema = querykit.Schema{
	SortableFields: []string{"year", "type", "start_date", "name", "created_at"},
	Filters: []querykit.FilterField{
		{Name: "type", Kind: querykit.FilterEnum, Enum: constants.ConferenceTypes},
		{Name: "year", Kind: querykit.FilterString},
		{Name: "is_active", Kind: querykit.FilterBool},
	},
	Searchable: false,
	Relations:  []string{"schedules"},
}

var QueryConfig = querykit.Config{
	SearchableFields: nil,
	FilterableFields: []string{"type", "year", "is_active"},
	HasSoftDelete:    true,
	Relations: map[string][]string{
		"schedules": {"Schedules.Rooms.Track"},
	},
}

/* =========================================================
   CREATE
   ========================================================= */

type CreateConferenceScheduleRequest struct {
	Name        string `json:"name" validate:"required,min=5,max=255"`
	Description string `json:"description" validate:"required,min=10"`

	Year      string `json:"year" validate:"required,len=4,numeric"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`

	Type     string `json:"type" validate:"required,oneof=ICICYTA ICODSA"`
	IsActive *bool  `json:"is_active" validate:"required"`

	ContactEmail string `json:"contact_email" validate:"required,email"`
	TimezoneIana string `json:"timezone_iana" validate:"required,min=3"`

	OnsitePresentation string `json:"onsite_presentation" validate:"required,min=10"`
	OnlinePresentation string `json:"online_presentation" validate:"required,min=10"`

	Notes        *string `json:"notes"`
	NoShowPolicy *string `json:"no_show_policy"`
}

func (r *CreateConferenceScheduleRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Year = strings.TrimSpace(r.Year)
	r.Type = strings.TrimSpace(r.Type)
	r.ContactEmail = strings.TrimSpace(r.ContactEmail)
	r.TimezoneIana = strings.TrimSpace(r.TimezoneIana)
}

func (r *CreateConferenceScheduleRequest) Validate() error {
	r.Normalize()
	if err := validate.Struct(r); err != nil {
		return err
	}
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	if !end.After(start) {
		return helper.NewFieldError("End date must be after the start date.", "end_date")
	}
	return nil
}

func (r CreateConferenceScheduleRequest) ToModel() model.ConferenceScheduleModel {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	return model.ConferenceScheduleModel{
		Name:               r.Name,
		Description:        r.Description,
		Year:               r.Year,
		Type:               r.Type,
		StartDate:          datatypes.Date(start),
		EndDate:            datatypes.Date(end),
		IsActive:           r.IsActive != nil && *r.IsActive,
		ContactEmail:       r.ContactEmail,
		TimezoneIana:       r.TimezoneIana,
		OnsitePresentation: r.OnsitePresentation,
		OnlinePresentation: r.OnlinePresentation,
		Notes:              r.Notes,
		NoShowPolicy:       r.NoShowPolicy,
	}
}

/* =========================================================
   UPDATE — semua field opsional, minimal satu yang terisi
   ========================================================= */

type UpdateConferenceScheduleRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=5,max=255"`
	Description *string `json:"description" validate:"omitempty,min=10"`

	Year      *string `json:"year" validate:"omitempty,len=4,numeric"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`

	Type     *string `json:"type" validate:"omitempty,oneof=ICICYTA ICODSA"`
	IsActive *bool   `json:"is_active"`

	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	TimezoneIana *string `json:"timezone_iana" validate:"omitempty,min=3"`

	OnsitePresentation *string `json:"onsite_presentation" validate:"omitempty,min=10"`
	OnlinePresentation *string `json:"online_presentation" validate:"omitempty,min=10"`

	Notes        *string `json:"notes"`
	NoShowPolicy *string `json:"no_show_policy"`
}

func (r *UpdateConferenceScheduleRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Year == nil &&
		r.StartDate == nil && r.EndDate == nil && r.Type == nil &&
		r.IsActive == nil && r.ContactEmail == nil && r.TimezoneIana == nil &&
		r.OnsitePresentation == nil && r.OnlinePresentation == nil &&
		r.Notes == nil && r.NoShowPolicy == nil
}

func (r *UpdateConferenceScheduleRequest) Validate() error {
	if r.IsEmpty() {
		return helper.BadRequest("At least one field must be provided to perform an update.")
	}
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.StartDate != nil && r.EndDate != nil {
		start, _ := time.Parse(dateLayout, *r.StartDate)
		end, _ := time.Parse(dateLayout, *r.EndDate)
		if !end.After(start) {
			return helper.NewFieldError("End date must be after the start date.", "end_date")
		}
	}
	return nil
}

// ToUpdates: hanya field yang dikirim yang masuk ke map update.
func (r UpdateConferenceScheduleRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Year != nil {
		updates["year"] = *r.Year
	}
	if r.StartDate != nil {
		start, _ := time.Parse(dateLayout, *r.StartDate)
		updates["start_date"] = datatypes.Date(start)
	}
	if r.EndDate != nil {
		end, _ := time.Parse(dateLayout, *r.EndDate)
		updates["end_date"] = datatypes.Date(end)
	}
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	if r.ContactEmail != nil {
		updates["contact_email"] = *r.ContactEmail
	}
	if r.TimezoneIana != nil {
		updates["timezone_iana"] = *r.TimezoneIana
	}
	if r.OnsitePresentation != nil {
		updates["onsite_presentation"] = *r.OnsitePresentation
	}
	if r.OnlinePresentation != nil {
		updates["online_presentation"] = *r.OnlinePresentation
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	if r.NoShowPolicy != nil {
		updates["no_show_policy"] = *r.NoShowPolicy
	}
	return updates
}
