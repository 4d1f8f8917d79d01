package constants

// Centralized constants for headers, env keys and auth integration.
const (
	// Environment variable keys
	EnvSessionSecret       = "SESSION_SECRET"
	EnvGoogleClientID      = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret  = "GOOGLE_CLIENT_SECRET"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"
	EnvConfigPath          = "VEX_CONFIG"
	EnvDBPath              = "VEX_DB"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// Session / Cookie names
	CookieSessionName = "vex_session"

	// Google OAuth constants
	GoogleOAuthRedirect = "postmessage"
	GoogleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var (
	// Scopes for Google userinfo
	GoogleUserInfoScopes = []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"}
)

// Routes used by the backend router
const (
	RouteAPIPrefix          = "/api"
	RouteVersion            = "/version"
	RouteLeaderboard        = "/leaderboard"
	RouteAuthGoogleCallBack = "/auth/google/oauth2callback"
	RouteAuthLogout         = "/auth/logout"
	RoutePlayerStats        = "/player-stats"
	RouteBattleHistory      = "/battle-history"
	RouteBattles            = "/battles"
	RouteBattleByID         = "/battles/:battleID"
	RouteBattleAction       = "/battles/:battleID/action"
	RouteBattleAdvance      = "/battles/:battleID/advance"
	RouteBattleOutcome      = "/battles/:battleID/outcome"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest   = "Invalid request"
	ErrMissingGoogleEnv = "Missing GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET in environment"
	ErrEmailRequired    = "email is required"

	ErrBattleNotFound         = "Battle not found"
	ErrBattleBelongsToOther   = "Battle belongs to another player"
	ErrBattleAlreadyActive    = "Player already has an active battle"
	ErrUnknownEnemy           = "Unknown enemy or boss"
	ErrNotPlayerTurn          = "Not waiting for a player action"
	ErrActionNotAllowed       = "Action not allowed here"
	ErrItemNotInPack          = "Item not in pack"
	ErrBattleStillActive      = "Battle is still in progress"
	ErrFailedStartBattle      = "Failed to start battle"
	ErrFailedFetchStats       = "Failed to fetch stats"
	ErrFailedFetchHistory     = "Failed to fetch battle history"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedUpdateProfile    = "Failed to update profile"

	ErrFailedExchangeToken    = "Failed to exchange token"
	ErrFailedGetUserInfo      = "Failed to get user info"
	ErrFailedReadUserData     = "Failed to read user data: %s"
	ErrNoEmailInGoogleProfile = "No email in Google profile"
	ErrFailedCreateSession    = "Failed to create session"

	ErrAuthRequired   = "Authentication required"
	ErrInvalidSession = "Invalid session"
)

// Logging field names
const (
	LogFieldBattleID = "battle_id"
	LogFieldEnemy    = "enemy"
	LogFieldEmail    = "email"
	LogFieldAddr     = "addr"
)
