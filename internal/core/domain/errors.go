package domain

import "go.trai.ch/zerr"

var (
	// ErrStageAlreadyExists is returned when a stage with the same name is added twice.
	ErrStageAlreadyExists = zerr.New("stage already exists")

	// ErrPipelineNotLinear is returned when a stage chain is not a single linear sequence.
	ErrPipelineNotLinear = zerr.New("pipeline is not linear")

	// ErrStageFailed is returned when a stage's step execution fails.
	ErrStageFailed = zerr.New("stage failed")

	// ErrManifestMissing is returned when a required dependency manifest is absent.
	ErrManifestMissing = zerr.New("manifest missing")

	// ErrInputMissing is returned when a required stage input cannot be found.
	ErrInputMissing = zerr.New("input missing")

	// ErrUnknownStage is returned when a requested stage is not part of the pipeline.
	ErrUnknownStage = zerr.New("unknown stage")

	// ErrBuildExecutionFailed wraps any stage failure surfaced to the CLI.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrLaunchFailed is returned when the entry-point process exits non-zero.
	ErrLaunchFailed = zerr.New("launch failed")
)
