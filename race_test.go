//go:build race

package dataformat

const raceEnabled = true
