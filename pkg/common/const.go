package common

const (
	KEY_SCANNER_SESSION = "scanner_session:%s:%s"
	KEY_ENGINE_HEALTH   = "engine_health"
)

const (
	COOKIE_SCANNER_SESSION = "scanner_session"
)
