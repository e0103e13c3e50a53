package core

type AppConfig interface {
	GetRuntimePath() string
	GetLogConfigPath() string
	IsDebug() bool
	IsPlainConsole() bool
}
