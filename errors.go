package islandhop

import "errors"

var (
	ErrMissingCharacter    = errors.New("scene has no character node")
	ErrMissingAnchor       = errors.New("scene is missing an interaction anchor")
	ErrNoFrameSurfaces     = errors.New("anchor has no frame surfaces")
	ErrNoCollisionGeometry = errors.New("scene has no collision geometry")
	ErrUnknownKey          = errors.New("unknown key name")
	ErrInvalidConfig       = errors.New("invalid config")
)
