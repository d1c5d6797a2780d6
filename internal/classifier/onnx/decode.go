package onnx

import (
	"fmt"
	"math"

	"github.com/you-humble/shape-shop/internal/model"
)

func decodeLabel(out []int64) (model.Shape, error) {
	if len(out) != 1 {
		return 0, fmt.Errorf("%w: label output has %d values", model.ErrClassification, len(out))
	}
	return model.ShapeFromIndex(out[0])
}

func decodeScores(out []float32) (model.Shape, error) {
	if len(out) != model.ShapeCount {
		return 0, fmt.Errorf("%w: scores output has %d values, want %d",
			model.ErrClassification, len(out), model.ShapeCount)
	}

	best := 0
	for i, v := range out {
		if math.IsNaN(float64(v)) {
			return 0, fmt.Errorf("%w: score %d is NaN", model.ErrClassification, i)
		}
		if v > out[best] {
			best = i
		}
	}

	return model.ShapeFromIndex(int64(best))
}
