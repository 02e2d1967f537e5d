package schemas

import (
	"encoding/json"

	"github.com/google/uuid"
)

// SetGetAllRequest selects the sets recorded against one workout/exercise
// pair.
type SetGetAllRequest struct {
	WorkoutID  string `json:"workout_id"`
	ExerciseID string `json:"exercise_id"`
}

// SetAddRequest is the wire shape for recording one set.
type SetAddRequest struct {
	WorkoutID  string      `json:"workout_id"`
	ExerciseID string      `json:"exercise_id"`
	RepCount   json.Number `json:"rep_count"`
	Weight     json.Number `json:"weight"`
}

// SetDeleteRequest deletes a single set.
type SetDeleteRequest struct {
	SetID string `json:"set_id"`
}

// SetUpdateRequest is the wire shape for a partial set update.
type SetUpdateRequest struct {
	SetID    string       `json:"set_id"`
	RepCount *json.Number `json:"rep_count"`
	Weight   *json.Number `json:"weight"`
}

// SetGetAll is a validated set listing request.
type SetGetAll struct {
	WorkoutID  uuid.UUID
	ExerciseID uuid.UUID
}

// SetAdd is a validated set creation.
type SetAdd struct {
	WorkoutID  uuid.UUID
	ExerciseID uuid.UUID
	RepCount   int
	Weight     int
}

// SetUpdate is a validated partial set update.
type SetUpdate struct {
	SetID    uuid.UUID
	RepCount *int
	Weight   *int
}

func (r SetGetAllRequest) Validate() (SetGetAll, error) {
	workoutID, err := ParseID(r.WorkoutID)
	if err != nil {
		return SetGetAll{}, err
	}
	exerciseID, err := ParseID(r.ExerciseID)
	if err != nil {
		return SetGetAll{}, err
	}
	return SetGetAll{WorkoutID: workoutID, ExerciseID: exerciseID}, nil
}

func (r SetAddRequest) Validate() (SetAdd, error) {
	workoutID, err := ParseID(r.WorkoutID)
	if err != nil {
		return SetAdd{}, err
	}
	exerciseID, err := ParseID(r.ExerciseID)
	if err != nil {
		return SetAdd{}, err
	}
	repCount, err := PositiveBoundedInt("rep_count", r.RepCount, MaxRepCount)
	if err != nil {
		return SetAdd{}, err
	}
	weight, err := PositiveBoundedInt("weight", r.Weight, MaxWeight)
	if err != nil {
		return SetAdd{}, err
	}
	return SetAdd{WorkoutID: workoutID, ExerciseID: exerciseID, RepCount: repCount, Weight: weight}, nil
}

func (r SetUpdateRequest) Validate() (SetUpdate, error) {
	id, err := ParseID(r.SetID)
	if err != nil {
		return SetUpdate{}, err
	}
	update := SetUpdate{SetID: id}
	if r.RepCount != nil {
		repCount, err := PositiveBoundedInt("rep_count", *r.RepCount, MaxRepCount)
		if err != nil {
			return SetUpdate{}, err
		}
		update.RepCount = &repCount
	}
	if r.Weight != nil {
		weight, err := PositiveBoundedInt("weight", *r.Weight, MaxWeight)
		if err != nil {
			return SetUpdate{}, err
		}
		update.Weight = &weight
	}
	return update, nil
}

// ValidateSetAdds validates a batch of set creations.
func ValidateSetAdds(requests []SetAddRequest) ([]SetAdd, error) {
	adds := make([]SetAdd, 0, len(requests))
	for _, r := range requests {
		add, err := r.Validate()
		if err != nil {
			return nil, err
		}
		adds = append(adds, add)
	}
	return adds, nil
}
