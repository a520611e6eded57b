// Package doctor runs environment health checks for the doctor command.
// Each check returns Results; rendering and exit-code policy belong to
// the command layer.
package doctor

//go:generate go run golang.org/x/tools/cmd/stringer -type=Status -trimprefix=Status

// Status classifies a check outcome.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one check outcome.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
