package api

// @title resiosctl API
// @version v1
// @description Route console API for a Cosmos/resiOS server: route sanitizing,
// @description validation, hostname suggestions, favicons, drafts and session checks.

// @host localhost:8779
// @BasePath /api
// @schemes http
