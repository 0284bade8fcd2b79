package models

// LocaleKey is the database setting key for the preferred message locale.
const LocaleKey = "locale"

// LastConfigSnapshotKey stores the last configuration fetched from the server,
// used when the server is unreachable.
const LastConfigSnapshotKey = "last_config_snapshot"
