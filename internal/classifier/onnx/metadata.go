package onnx

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/you-humble/shape-shop/internal/model"
)

const (
	OutputKindLabel  = "label"
	OutputKindScores = "scores"
)

// Metadata describes the exported model next to the .onnx file.
type Metadata struct {
	InputName    string   `json:"input_name"`
	OutputName   string   `json:"output_name"`
	OutputKind   string   `json:"output_kind"`
	FeatureOrder []string `json:"feature_order"`
	Classes      []string `json:"classes"`
}

func LoadMetadata(path string) (Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Metadata{}, fmt.Errorf("failed to parse metadata: %w", err)
	}

	if err := meta.Validate(); err != nil {
		return Metadata{}, err
	}

	return meta, nil
}

// Validate rejects artifacts trained on another feature order or label set.
func (m Metadata) Validate() error {
	if m.InputName == "" || m.OutputName == "" {
		return fmt.Errorf("%w: input_name and output_name are required", model.ErrModelArtifact)
	}

	switch m.OutputKind {
	case OutputKindLabel, OutputKindScores:
	default:
		return fmt.Errorf("%w: unknown output_kind %q", model.ErrModelArtifact, m.OutputKind)
	}

	if !slices.Equal(m.FeatureOrder, model.FeatureOrder) {
		return fmt.Errorf("%w: feature_order %v, want %v", model.ErrModelArtifact, m.FeatureOrder, model.FeatureOrder)
	}

	if !slices.Equal(m.Classes, model.ShapeNames()) {
		return fmt.Errorf("%w: classes %v, want %v", model.ErrModelArtifact, m.Classes, model.ShapeNames())
	}

	return nil
}
