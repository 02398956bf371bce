package fixtures

// Exact login error copy surfaced by the target for each failure mode.
// These matches are brittle by construction: a copy change on the site is
// supposed to break the suite.
const (
	MsgInvalidCredentials = "Epic sadface: Username and password do not match any user in this service"
	MsgLockedOut          = "Epic sadface: Sorry, this user has been locked out."
	MsgUsernameRequired   = "Epic sadface: Username is required"
	MsgPasswordRequired   = "Epic sadface: Password is required"
)

// Checkout-information form validation copy.
const (
	MsgFirstNameRequired  = "Error: First Name is required"
	MsgLastNameRequired   = "Error: Last Name is required"
	MsgPostalCodeRequired = "Error: Postal Code is required"
)

// Completion-screen copy: the header is matched exactly, the body is
// matched on both substrings.
const (
	CompleteHeader       = "Thank you for your order!"
	CompleteDispatchText = "Your order has been dispatched"
	CompletePonyText     = "will arrive just as fast as the pony can get there!"
)
