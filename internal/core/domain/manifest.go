package domain

import "time"

// Artifact records one written capture artifact and its content checksum.
type Artifact struct {
	// File is the artifact file name, relative to the manifest's directory.
	File string `json:"file"`

	// Hash is the hex-encoded XXHash of the artifact content.
	Hash string `json:"hash"`
}

// Manifest is the capture-time record of the artifacts written for one
// environment. It is immutable once written; re-capturing with the same
// basename overwrites it.
type Manifest struct {
	// Environment is the name of the source environment.
	Environment string `json:"environment"`

	// CreatedAt is the capture time in UTC.
	CreatedAt time.Time `json:"createdAt"`

	// Artifacts maps strategy names to the artifacts they produced. Strategies
	// that failed during capture have no entry.
	Artifacts map[string]Artifact `json:"artifacts"`
}
