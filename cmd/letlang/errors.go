package main

import "errors"

// Sentinel errors for command operations
var (
	ErrFileNotFormatted = errors.New("file is not formatted")
	ErrFormattingErrors = errors.New("some files had formatting errors")
	ErrUnknownFormat    = errors.New("unknown output format")
)
