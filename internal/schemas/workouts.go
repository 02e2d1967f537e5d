package schemas

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutIDRequest carries a single workout reference, used by the detail and
// delete endpoints.
type WorkoutIDRequest struct {
	WorkoutID string `json:"workout_id"`
}

// WorkoutCreateRequest is the wire shape for creating one workout.
type WorkoutCreateRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// WorkoutUpdateRequest is the wire shape for a partial workout update.
// Absent fields keep their stored values.
type WorkoutUpdateRequest struct {
	WorkoutID string  `json:"workout_id"`
	Name      *string `json:"name"`
	Date      *string `json:"date"`
}

// WorkoutAddExerciseRequest associates one exercise with one workout.
type WorkoutAddExerciseRequest struct {
	WorkoutID  string `json:"workout_id"`
	ExerciseID string `json:"exercise_id"`
}

// WorkoutCopyRequest duplicates a workout under a new date.
type WorkoutCopyRequest struct {
	WorkoutID string `json:"workout_id"`
	Date      string `json:"date"`
}

// WorkoutCreate is a validated workout creation.
type WorkoutCreate struct {
	Name string
	Date time.Time
}

// WorkoutUpdate is a validated partial workout update.
type WorkoutUpdate struct {
	WorkoutID uuid.UUID
	Name      *string
	Date      *time.Time
}

// WorkoutAddExercise is a validated workout/exercise association.
type WorkoutAddExercise struct {
	WorkoutID  uuid.UUID
	ExerciseID uuid.UUID
}

// WorkoutCopy is a validated workout copy.
type WorkoutCopy struct {
	WorkoutID uuid.UUID
	Date      time.Time
}

func (r WorkoutCreateRequest) Validate() (WorkoutCreate, error) {
	name, err := NonEmptyString("name", r.Name)
	if err != nil {
		return WorkoutCreate{}, err
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return WorkoutCreate{}, err
	}
	return WorkoutCreate{Name: name, Date: date}, nil
}

func (r WorkoutUpdateRequest) Validate() (WorkoutUpdate, error) {
	id, err := ParseID(r.WorkoutID)
	if err != nil {
		return WorkoutUpdate{}, err
	}
	update := WorkoutUpdate{WorkoutID: id}
	if r.Name != nil {
		name, err := NonEmptyString("name", *r.Name)
		if err != nil {
			return WorkoutUpdate{}, err
		}
		update.Name = &name
	}
	if r.Date != nil {
		date, err := ParseDate(*r.Date)
		if err != nil {
			return WorkoutUpdate{}, err
		}
		update.Date = &date
	}
	return update, nil
}

func (r WorkoutAddExerciseRequest) Validate() (WorkoutAddExercise, error) {
	workoutID, err := ParseID(r.WorkoutID)
	if err != nil {
		return WorkoutAddExercise{}, err
	}
	exerciseID, err := ParseID(r.ExerciseID)
	if err != nil {
		return WorkoutAddExercise{}, err
	}
	return WorkoutAddExercise{WorkoutID: workoutID, ExerciseID: exerciseID}, nil
}

func (r WorkoutCopyRequest) Validate() (WorkoutCopy, error) {
	id, err := ParseID(r.WorkoutID)
	if err != nil {
		return WorkoutCopy{}, err
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return WorkoutCopy{}, err
	}
	return WorkoutCopy{WorkoutID: id, Date: date}, nil
}

// ValidateWorkoutIDs validates a batch of workout references.
func ValidateWorkoutIDs(requests []WorkoutIDRequest) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(requests))
	for _, r := range requests {
		id, err := ParseID(r.WorkoutID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ValidateWorkoutCreates validates a batch of workout creations.
func ValidateWorkoutCreates(requests []WorkoutCreateRequest) ([]WorkoutCreate, error) {
	creates := make([]WorkoutCreate, 0, len(requests))
	for _, r := range requests {
		create, err := r.Validate()
		if err != nil {
			return nil, err
		}
		creates = append(creates, create)
	}
	return creates, nil
}

// ValidateWorkoutUpdates validates a batch of workout updates.
func ValidateWorkoutUpdates(requests []WorkoutUpdateRequest) ([]WorkoutUpdate, error) {
	updates := make([]WorkoutUpdate, 0, len(requests))
	for _, r := range requests {
		update, err := r.Validate()
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}
	return updates, nil
}

// ValidateWorkoutAddExercises validates a batch of associations.
func ValidateWorkoutAddExercises(requests []WorkoutAddExerciseRequest) ([]WorkoutAddExercise, error) {
	links := make([]WorkoutAddExercise, 0, len(requests))
	for _, r := range requests {
		link, err := r.Validate()
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

// ValidateWorkoutCopies validates a batch of workout copies.
func ValidateWorkoutCopies(requests []WorkoutCopyRequest) ([]WorkoutCopy, error) {
	copies := make([]WorkoutCopy, 0, len(requests))
	for _, r := range requests {
		c, err := r.Validate()
		if err != nil {
			return nil, err
		}
		copies = append(copies, c)
	}
	return copies, nil
}
