package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/you-humble/shape-shop/internal/validation"
)

// Measurements is the feature vector fed to the shape classifier.
type Measurements struct {
	DressSize float64 `validate:"gt=0" form:"Dress_size"`
	Breasts   float64 `validate:"gt=0" form:"Breasts"`
	Waist     float64 `validate:"gt=0" form:"Waist"`
	Hips      float64 `validate:"gt=0" form:"Hips"`
	Shoe      float64 `validate:"gt=0" form:"Shoe"`
	Height    float64 `validate:"gt=0" form:"Height"`
	Weight    float64 `validate:"gt=0" form:"Weight"`
}

// FeatureOrder is the column order the model was trained with.
var FeatureOrder = []string{"dress_size", "breasts", "waist", "hips", "shoe", "height", "weight"}

// Vector returns the features in FeatureOrder.
func (m Measurements) Vector() []float32 {
	return []float32{
		float32(m.DressSize),
		float32(m.Breasts),
		float32(m.Waist),
		float32(m.Hips),
		float32(m.Shoe),
		float32(m.Height),
		float32(m.Weight),
	}
}

// MeasurementsInput carries the raw form values of POST /predict.
type MeasurementsInput struct {
	DressSize string `validate:"required" form:"Dress_size"`
	Breasts   string `validate:"required" form:"Breasts"`
	Waist     string `validate:"required" form:"Waist"`
	Hips      string `validate:"required" form:"Hips"`
	Shoe      string `validate:"required" form:"Shoe"`
	Height    string `validate:"required" form:"Height"`
	Weight    string `validate:"required" form:"Weight"`
}

func (in MeasurementsInput) Parse() (Measurements, error) {
	if err := validation.Struct(in); err != nil {
		return Measurements{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var m Measurements
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"Dress_size", in.DressSize, &m.DressSize},
		{"Breasts", in.Breasts, &m.Breasts},
		{"Waist", in.Waist, &m.Waist},
		{"Hips", in.Hips, &m.Hips},
		{"Shoe", in.Shoe, &m.Shoe},
		{"Height", in.Height, &m.Height},
		{"Weight", in.Weight, &m.Weight},
	}

	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Measurements{}, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidInput, f.name, f.raw)
		}
		// Vector narrows to float32.
		if math.Abs(v) > math.MaxFloat32 {
			return Measurements{}, fmt.Errorf("%w: %s is out of range", ErrInvalidInput, f.name)
		}
		*f.dst = v
	}

	if err := validation.Struct(m); err != nil {
		return Measurements{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return m, nil
}
