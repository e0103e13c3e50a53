package core

const (
	AppName    = "patterns"
	AppVersion = "0.1.0"
)
