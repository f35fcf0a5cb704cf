package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PipelineSettings holds the directories and tuning knobs of the note pipeline.
type PipelineSettings struct {
	DataDir               string `mapstructure:"data_dir" validate:"required"`
	OutputDir             string `mapstructure:"output_dir" validate:"required"`
	SiteDir               string `mapstructure:"site_dir" validate:"required"`
	SiteTitle             string `mapstructure:"site_title" validate:"required"`
	SlideDPI              int    `mapstructure:"slide_dpi" validate:"required,min=36,max=600"`
	ChunkMinutes          int    `mapstructure:"chunk_minutes" validate:"required,min=1,max=60"`
	DefaultLectureMinutes int    `mapstructure:"default_lecture_minutes" validate:"required,min=1"`
	WindowMultiplier      int    `mapstructure:"window_multiplier" validate:"required,min=1,max=10"`
	OverlapBack           int    `mapstructure:"overlap_back" validate:"min=0,max=10"`
}

// Validate checks that all fields in PipelineSettings are valid
func (s *PipelineSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for PipelineSettings: %w", err)
	}

	return nil
}
