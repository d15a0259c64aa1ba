package state

import (
	_ "embed"
)

const SampleUri = "sample:///museum.family.json"

//go:embed sample.family.json
var sampleText string

// Sample returns the built-in dataset used when no workspace dataset is loaded.
func Sample() Members {
	list, err := ParseMembers(sampleText)

	if err != nil {
		panic("invalid sample dataset: " + err.Error())
	}

	return list
}
