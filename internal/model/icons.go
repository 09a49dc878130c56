package model

// Status markers printed in front of every check and generated file.
// Single-width characters keep the columns aligned in every terminal.
const (
	IconSuccess = "✓"
	IconFailure = "✗"
)
