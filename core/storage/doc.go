// Package storage provides the S3/MinIO client used for feed snapshot
// archival.
//
// When enabled, every sync pass uploads the raw upstream feed payload to a
// bucket ("snapshots/<competition>/<timestamp>.json"), giving an audit trail
// that a pass can be replayed or debugged from. Archival failures are logged
// but never fail a pass.
package storage
