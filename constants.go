package main

type Mode int

const (
	ModeExplore Mode = iota
	ModeSelect
	ModeFileInput
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmReset
	ConfirmOverwriteFile
)

const (
	DefaultMaxIterations = 200
	DefaultExportSize    = 1024
	DefaultListenAddr    = ":8080"
	MaxCanvasSize        = 4096

	minSelectionSide = 2
	fastMoveSpeed    = 4
)
