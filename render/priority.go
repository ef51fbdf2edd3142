package render

// RenderPriority determines draw order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityBackLayer
	PriorityMidLayer
	PriorityTree
	PriorityGarland
	PriorityOrnament
	PrioritySparkle
	PrioritySnow
	PriorityUI
)
