package types

// ScanResult is the outcome of processing one database. Exactly one of
// Artifacts and Err is set.
type ScanResult struct {
	ID        string // UUID v7 assigned when processing starts
	Path      string
	Tables    []string
	Artifacts *ArtifactSet
	Err       error
}
