package model

// Package model defines the domain data structures shared across the app:
// saved video entries and the ordered video list.
// Field names and JSON tags are part of the stored format and must not change.
