package schemas

import "github.com/google/uuid"

// ExerciseIDRequest carries a single exercise reference, used by the detail,
// delete and progress endpoints.
type ExerciseIDRequest struct {
	ExerciseID string `json:"exercise_id"`
}

// ExerciseCreateRequest is the wire shape for creating one exercise.
type ExerciseCreateRequest struct {
	Name  string  `json:"name"`
	Notes *string `json:"notes"`
}

// ExerciseUpdateRequest is the wire shape for a partial exercise update.
type ExerciseUpdateRequest struct {
	ExerciseID string  `json:"exercise_id"`
	Name       *string `json:"name"`
	Notes      *string `json:"notes"`
}

// ExerciseCreate is a validated exercise creation.
type ExerciseCreate struct {
	Name  string
	Notes *string
}

// ExerciseUpdate is a validated partial exercise update.
type ExerciseUpdate struct {
	ExerciseID uuid.UUID
	Name       *string
	Notes      *string
}

func (r ExerciseCreateRequest) Validate() (ExerciseCreate, error) {
	name, err := NonEmptyString("name", r.Name)
	if err != nil {
		return ExerciseCreate{}, err
	}
	return ExerciseCreate{Name: name, Notes: r.Notes}, nil
}

func (r ExerciseUpdateRequest) Validate() (ExerciseUpdate, error) {
	id, err := ParseID(r.ExerciseID)
	if err != nil {
		return ExerciseUpdate{}, err
	}
	update := ExerciseUpdate{ExerciseID: id, Notes: r.Notes}
	if r.Name != nil {
		name, err := NonEmptyString("name", *r.Name)
		if err != nil {
			return ExerciseUpdate{}, err
		}
		update.Name = &name
	}
	return update, nil
}

// ValidateExerciseIDs validates a batch of exercise references.
func ValidateExerciseIDs(requests []ExerciseIDRequest) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(requests))
	for _, r := range requests {
		id, err := ParseID(r.ExerciseID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ValidateExerciseCreates validates a batch of exercise creations.
func ValidateExerciseCreates(requests []ExerciseCreateRequest) ([]ExerciseCreate, error) {
	creates := make([]ExerciseCreate, 0, len(requests))
	for _, r := range requests {
		create, err := r.Validate()
		if err != nil {
			return nil, err
		}
		creates = append(creates, create)
	}
	return creates, nil
}

// ValidateExerciseUpdates validates a batch of exercise updates.
func ValidateExerciseUpdates(requests []ExerciseUpdateRequest) ([]ExerciseUpdate, error) {
	updates := make([]ExerciseUpdate, 0, len(requests))
	for _, r := range requests {
		update, err := r.Validate()
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}
	return updates, nil
}
