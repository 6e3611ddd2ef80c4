// Package decode interprets rows of a sync-state metas table.
//
// Each row is classified along three independent axes: a binary prefix on
// the signature column (machines, recovery emails, extensions), a textual
// marker at a fixed byte window of the payload (name, birth date, recovery
// phone), and a URL scheme prefix on the payload. Once a kind is known the
// value is cut from the payload at the kind's fixed offset. The offsets and
// prefixes were recovered empirically from real stores and live in the rule
// tables of signature.go and marker.go so that format drift stays a data
// change.
//
// The Aggregator folds classified rows into a types.ArtifactSet in a single
// pass, applying each field's merge policy. Nothing in this package holds
// global state or performs I/O.
package decode
