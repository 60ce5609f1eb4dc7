// Package entities holds the gameplay objects spawned from room things.
package entities

// Collision groups.
const (
	CGWalls uint16 = 1 << iota
	CGPlayer
	// CGSolidPlayer is set on the player while it can be hurt.
	CGSolidPlayer
)
