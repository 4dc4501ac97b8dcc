package inquiry

// Status of a contact-form submission.
type Status string

const (
	StatusNew      Status = "new"
	StatusResolved Status = "resolved"
)

// Inquiry is a contact-form submission from an authenticated member.
type Inquiry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Status  Status `json:"status"`
}
