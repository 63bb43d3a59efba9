package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	statusSuccess = "success"
	statusError   = "error"
)

const (
	msgStoreUnavailable = "Could not connect to the database"
	msgLoginSuccess     = "Login successful!"
	msgLoginFailed      = "Invalid username or password!"
	msgLoginIncomplete  = "Please enter both username and password!"
	msgLoggedOut        = "You have been logged out!"
	msgMessageSent      = "Message sent successfully!"
	msgMessageNotSaved  = "Could not save the message"
	msgMessageDeleted   = "Message deleted successfully!"
	msgMessageNotGone   = "Could not delete the message"
	msgMessagesNotRead  = "Could not load messages"
)

type Response struct {
	Status  string `json:"status"`            // success or error
	Message string `json:"message,omitempty"` // short message for humans
}

// messageView is a message as the admin API returns it.
type messageView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
