package handlers

// Envelope messages used across the loan endpoints
const (
	MsgLoanNotFound       = "Loan not found"
	MsgLoansNotFound      = "No existing loans"
	MsgLoanNotRemoved     = "Loan not removed"
	MsgLoanRemoved        = "Loan removed"
	MsgLoanCreated        = "Loan created successfully"
	MsgLoanNotRejected    = "Loan not rejected"
	MsgLoanRejected       = "Loan rejected successfully"
	MsgLoanRetrieved      = "Loan retrieved successfully"
	MsgLoansRetrieved     = "Loans retrieved successfully"
	MsgLoanNotUpdated     = "Loan not updated"
	MsgLoanUpdated        = "Loan updated successfully"
	MsgInvalidPayload     = "Invalid request payload"
	MsgInvalidCredentials = "Invalid username or password"
)
