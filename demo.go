package islandhop

import (
	_ "embed"
)

// DemoScene is a small built-in island that classifies with DefaultConfig.
//
//go:embed assets/demo_scene.yaml
var DemoScene []byte
