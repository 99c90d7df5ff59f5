package common

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// FlashCookieName is the cookie carrying one-shot notifications across a redirect.
const FlashCookieName = "flash"

// DefaultAvatar is the storage key used for profiles without an uploaded picture.
const DefaultAvatar = "avatar/default/avatar.png"
