package core

// DataShapeError reports malformed report input: missing fields, mismatched
// table rows, or other structural problems in caller-supplied data. Builders
// fail closed with this error rather than degrading silently.
type DataShapeError struct {
	Msg string
}

func (e *DataShapeError) Error() string {
	return "data shape: " + e.Msg
}
