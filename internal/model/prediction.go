package model

import "time"

type Prediction struct {
	// Store-assigned identifier, zero until saved.
	ID int64
	// Owner of the prediction.
	UserID       int64
	Measurements Measurements
	Shape        Shape
	CreatedAt    time.Time
}

type PredictResult struct {
	Shape Shape
	// PredictionID is zero when the record could not be persisted.
	PredictionID int64
	Saved        bool
}
