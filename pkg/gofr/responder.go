package gofr

// Responder is used by the application to provide output.
type Responder interface {
	Respond(data any, err error)
}
