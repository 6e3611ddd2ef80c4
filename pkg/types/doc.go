// Package types defines the sync-state record model, the artifact set
// recovered from a single database, the decoder's record kinds, and the
// standard errors shared by the syncparse packages.
package types
