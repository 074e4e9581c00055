package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeVerifyRenditions = "images:verify_renditions"

type VerifyRenditionsPayload struct {
	ImageID string `json:"image_id"`
}

// NewVerifyRenditionsTask creates an Asynq task for verifying the rendition
// set of an image by ID.
func NewVerifyRenditionsTask(imageID string) (*asynq.Task, error) {
	p := VerifyRenditionsPayload{ImageID: imageID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal verify-renditions payload: %w", err)
	}
	return asynq.NewTask(TypeVerifyRenditions, data), nil
}

// ParseVerifyRenditionsPayload parses the task payload to VerifyRenditionsPayload.
func ParseVerifyRenditionsPayload(t *asynq.Task) (VerifyRenditionsPayload, error) {
	var p VerifyRenditionsPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return VerifyRenditionsPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
