// Package fixtures holds the static inputs and expected outputs the
// scenarios assert against: user credentials, the known catalog, checkout
// form data and the exact UI copy of the demo shop.
package fixtures

// Credentials is a username/password pair presented to the login form.
type Credentials struct {
	Username string
	Password string
}

// Password is shared by every real account on the demo site.
const Password = "secret_sauce"

// The demo shop's fixed user roster.
var (
	// StandardUser logs in and checks out normally.
	StandardUser = Credentials{Username: "standard_user", Password: Password}

	// LockedOutUser is rejected with the locked-out message.
	LockedOutUser = Credentials{Username: "locked_out_user", Password: Password}

	// ProblemUser renders broken product data on the site.
	ProblemUser = Credentials{Username: "problem_user", Password: Password}

	// PerformanceGlitchUser logs in successfully but slowly; flows using it
	// need the long timeout budget.
	PerformanceGlitchUser = Credentials{Username: "performance_glitch_user", Password: Password}

	// InvalidUser matches no account and must be rejected with the
	// no-match message.
	InvalidUser = Credentials{Username: "no_such_user", Password: "wrong_sauce"}
)

// CheckoutInfo is the transient personal data entered on the checkout
// information form. It is constructed fresh per scenario and never stored
// past it.
type CheckoutInfo struct {
	FirstName  string
	LastName   string
	PostalCode string
}

// DefaultCheckoutInfo returns the stock identity scenarios check out with.
func DefaultCheckoutInfo() CheckoutInfo {
	return CheckoutInfo{
		FirstName:  "John",
		LastName:   "Doe",
		PostalCode: "12345",
	}
}
