package exporter

// Header binds a column label to a callback that extracts the column's
// display string from a record. The label doubles as the column's key for
// header ordering.
//
// Callbacks are expected to be pure: they are invoked once per record per
// export production, possibly more than once across repeated productions.
// A callback error aborts the export (see Exporter).
//
// Labels are not validated. Duplicate labels are permitted and simply
// produce duplicate columns, each extracted independently.
type Header[T any] struct {
	Label    string
	Callback func(T) (string, error)
}
