package common

// TokenCookieName is the cookie that carries the signed auth token between
// the API and the browser.
const TokenCookieName = "token"

// EnvProduction is the APP_ENV value that switches on production behavior
// (secure cookies, no diagnostic detail in 500 responses).
const EnvProduction = "production"
