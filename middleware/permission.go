package middleware

import "errors"

// Authorization denial kinds
var (
	ErrNotAdmin = errors.New("admin role required")
	ErrNotOwner = errors.New("caller does not own this resource")
)

// Action names an operation subject to authorization
type Action string

const (
	ActionCreateBook    Action = "createBook"
	ActionCreateReview  Action = "createReview"
	ActionUpdateReview  Action = "updateReview"
	ActionDeleteReview  Action = "deleteReview"
	ActionUpdateProfile Action = "updateProfile"
)

// Identity is the resolved caller derived from a verified credential.
type Identity struct {
	UserID  uint
	IsAdmin bool
}

// Resource describes the target of an action. OwnerID is the user that owns
// the review or profile being acted on; it is ignored for admin-gated actions.
type Resource struct {
	OwnerID uint
}

// Authorize is the single policy decision point for every gated mutation.
// Rules:
//   - createBook requires the admin role.
//   - updateProfile, updateReview and deleteReview require the caller to be
//     the resource owner. Admin grants no ownership: an admin cannot touch
//     another user's review or profile.
//   - createReview is open to any authenticated identity; the per-book
//     uniqueness check is a data invariant enforced by the review store,
//     not a policy rule.
//
// A nil return means allow.
func Authorize(ident Identity, action Action, res Resource) error {
	switch action {
	case ActionCreateBook:
		if !ident.IsAdmin {
			return ErrNotAdmin
		}
		return nil
	case ActionUpdateProfile, ActionUpdateReview, ActionDeleteReview:
		if ident.UserID != res.OwnerID {
			return ErrNotOwner
		}
		return nil
	case ActionCreateReview:
		return nil
	default:
		return ErrNotOwner
	}
}
