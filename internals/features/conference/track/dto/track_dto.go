package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

var validate = validator.New()

/* =========================================================
   LIST
   ========================================================= */

var ListSchema = querykit.Schema{
	SortableFields: []string{"name", "created_at"},
	Filters:        nil,
	Searchable:     true,
	Relations:      []string{"room", "track_sessions"},
}

var QueryConfig = querykit.Config{
	SearchableFields: []string{"name", "description"},
	FilterableFields: nil,
	HasSoftDelete:    false,
	Relations: map[string][]string{
		"room":           {"Room.Schedule.ConferenceSchedule"},
		"track_sessions": {"TrackSessions"},
	},
}

/* =========================================================
   UPDATE — track lahir dari payload Room.Create, tidak ada
   create DTO berdiri sendiri
   ========================================================= */

type UpdateTrackRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3"`
	Description *string `json:"description"`
}

func (r *UpdateTrackRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil
}

func (r *UpdateTrackRequest) Validate() error {
	if r.IsEmpty() {
		return helper.BadRequest("At least one field must be provided to perform an update.")
	}
	if err := validate.Struct(r); err != nil {
		return err
	}
	return nil
}

func (r UpdateTrackRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	return updates
}
