package common

const (
	// API_TASKS is used to get task details
	API_TASKS = "/tasks"

	// API_STORAGE_EXPORTS is used to start or get export jobs
	API_STORAGE_EXPORTS = "/storage/exports"

	// API_STORAGE_IMPORTS is used to start or get import jobs
	API_STORAGE_IMPORTS = "/storage/imports"

	// HEADER_AUTH_TOKEN carries the developer token
	HEADER_AUTH_TOKEN = "X-SBG-Auth-Token"

	// HEADER_CONTENT_TYPE is always CONTENT_TYPE_JSON
	HEADER_CONTENT_TYPE = "Content-Type"
	CONTENT_TYPE_JSON   = "application/json"
)
