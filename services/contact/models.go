package contact

// Submission is one contact-form request. It lives for the duration of the
// request; nothing durable is kept on acceptance (the outbound email is the
// system of record).
type Submission struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Subject   string `json:"subject" validate:"required,min=3,max=200"`
	Message   string `json:"message" validate:"required,min=10,max=1000"`
	Honeypot  string `json:"honeypot,omitempty"`
	FormToken string `json:"formToken" validate:"required,min=10"`
	Timestamp string `json:"timestamp" validate:"required"`
}

// Result is the single response shape every outcome is normalised to.
// Errors is only populated by the schema-validation stage; anti-abuse
// rejections deliberately carry nothing but a generic message.
type Result struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// RequestMeta carries the request attributes the pipeline needs but the
// client does not submit.
type RequestMeta struct {
	// Identity keys the rate limiter. The handler derives it from the
	// client address; anything stable per submitter works.
	Identity  string
	UserAgent string
}
