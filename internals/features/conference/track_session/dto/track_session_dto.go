package dto

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"confku_backend/internals/constants"
	"confku_backend/internals/features/conference/model"
	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

var validate = validator.New()

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

/* =========================================================
   LIST
   ========================================================= */

var ListSchema = querykit.Schema{
	SortableFields: []string{"paper_id", "title", "mode", "start_time", "created_at"},
	Filters: []querykit.FilterField{
		{Name: "mode", Kind: querykit.FilterEnum, Enum: constants.TrackSessionModes},
		{Name: "track_id", Kind: querykit.FilterUUID},
	},
	Searchable: true,
	Relations:  []string{"track"},
}

var QueryConfig = querykit.Config{
	SearchableFields: []string{"title", "paper_id", "authors"},
	FilterableFields: []string{"mode", "track_id"},
	HasSoftDelete:    false,
	Relations: map[string][]string{
		"track": {"Track.Room"},
	},
}

/* =========================================================
   CREATE
   ========================================================= */

type CreateTrackSessionRequest struct {
	PaperID string `json:"paper_id" validate:"required"`
	Title   string `json:"title" validate:"required,min=3"`
	Authors string `json:"authors" validate:"required,min=3"`

	Mode  string  `json:"mode" validate:"required,oneof=ONLINE OFFLINE"`
	Notes *string `json:"notes"`

	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`

	TrackID uuid.UUID `json:"track_id" validate:"required"`
}

func (r *CreateTrackSessionRequest) Normalize() {
	r.PaperID = strings.TrimSpace(r.PaperID)
	r.Title = strings.TrimSpace(r.Title)
	r.Authors = strings.TrimSpace(r.Authors)
	r.Mode = strings.ToUpper(strings.TrimSpace(r.Mode))
}

func (r *CreateTrackSessionRequest) Validate() error {
	r.Normalize()
	if err := validate.Struct(r); err != nil {
		return err
	}

	var errs helper.FieldErrors
	if !timePattern.MatchString(r.StartTime) {
		errs.Add("Start time must be in HH:mm format (e.g., 09:30).", "start_time")
	}
	if !timePattern.MatchString(r.EndTime) {
		errs.Add("End time must be in HH:mm format (e.g., 17:00).", "end_time")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateTrackSessionRequest) ToModel() model.TrackSessionModel {
	return model.TrackSessionModel{
		PaperID:   r.PaperID,
		Title:     r.Title,
		Authors:   r.Authors,
		Mode:      r.Mode,
		Notes:     r.Notes,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		TrackID:   r.TrackID,
	}
}

/* =========================================================
   UPDATE
   ========================================================= */

type UpdateTrackSessionRequest struct {
	PaperID *string `json:"paper_id" validate:"omitempty,min=1"`
	Title   *string `json:"title" validate:"omitempty,min=3"`
	Authors *string `json:"authors" validate:"omitempty,min=3"`

	Mode  *string `json:"mode" validate:"omitempty,oneof=ONLINE OFFLINE"`
	Notes *string `json:"notes"`

	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`

	TrackID *uuid.UUID `json:"track_id"`
}

func (r *UpdateTrackSessionRequest) IsEmpty() bool {
	return r.PaperID == nil && r.Title == nil && r.Authors == nil &&
		r.Mode == nil && r.Notes == nil && r.StartTime == nil &&
		r.EndTime == nil && r.TrackID == nil
}

func (r *UpdateTrackSessionRequest) Validate() error {
	if r.IsEmpty() {
		return helper.BadRequest("At least one field must be provided to perform an update.")
	}
	if err := validate.Struct(r); err != nil {
		return err
	}

	var errs helper.FieldErrors
	if r.StartTime != nil && !timePattern.MatchString(*r.StartTime) {
		errs.Add("Start time must be in HH:mm format (e.g., 09:30).", "start_time")
	}
	if r.EndTime != nil && !timePattern.MatchString(*r.EndTime) {
		errs.Add("End time must be in HH:mm format (e.g., 17:00).", "end_time")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r UpdateTrackSessionRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.PaperID != nil {
		updates["paper_id"] = strings.TrimSpace(*r.PaperID)
	}
	if r.Title != nil {
		updates["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Authors != nil {
		updates["authors"] = strings.TrimSpace(*r.Authors)
	}
	if r.Mode != nil {
		updates["mode"] = *r.Mode
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	if r.StartTime != nil {
		updates["start_time"] = *r.StartTime
	}
	if r.EndTime != nil {
		updates["end_time"] = *r.EndTime
	}
	if r.TrackID != nil {
		updates["track_id"] = *r.TrackID
	}
	return updates
}
