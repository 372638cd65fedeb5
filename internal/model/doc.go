package model

// Package model defines the data shared between the probe, planner, worker and
// UI layers: download options, probe results, run state and progress events.
// Values are plain structs so they can cross goroutines by copy.
