package structs

// Headers are HTTP headers sent with each platform request.
type Headers map[string]string

// Connection is a named platform connection.
type Connection struct {
	// ID is the name callers refer to this connection by, eg. "cavatica"
	ID string `json:"id"`

	// Host is the API base URL, eg. https://cavatica-api.sbgenomics.com/v2
	Host string `json:"host"`

	// Password holds the developer auth token.
	Password string `json:"-"`
}
