package services

// ValidationError marks bad or missing input. Its message is safe to show to
// the client.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// NotFoundError marks a missing cart line, menu item or order. Its message is
// safe to show to the client.
type NotFoundError string

func (e NotFoundError) Error() string { return string(e) }
