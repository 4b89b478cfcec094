package domain

// AvatarUpload is an avatar file captured from the sign-up form.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SignUpInput is a validated sign-up payload handed to the auth usecase.
type SignUpInput struct {
	FullName string
	Email    string
	Phone    string
	Password string
	Avatar   *AvatarUpload
}

// SignUpStatus is the user-visible outcome class of a sign-up attempt.
type SignUpStatus int

const (
	// SignUpSuccess: a session existed and the profile was saved.
	SignUpSuccess SignUpStatus = iota
	// SignUpPendingConfirmation: the provider issued no session; the customer
	// must confirm their email before signing in.
	SignUpPendingConfirmation
	// SignUpPartialFailure: a session existed but the profile could not be
	// saved through either write path.
	SignUpPartialFailure
)

// SignUpOutcome reports what the sign-up orchestration achieved. The
// transient session is always signed out again before this is returned, so
// Session here is informational only.
type SignUpOutcome struct {
	Status       SignUpStatus
	Identity     *Identity
	ProfileSaved bool
	AvatarURL    *string
}

// ReviewInput is a review submission before identity stamping.
type ReviewInput struct {
	Rating      int    `json:"rating"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ReviewPage is one fetched page of the review feed plus the authoritative
// total, which may have grown since the previous page.
type ReviewPage struct {
	Data  []Review `json:"data"`
	Count int      `json:"count"`
}
