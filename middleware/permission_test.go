package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	admin := Identity{UserID: 1, IsAdmin: true}
	user := Identity{UserID: 2}

	cases := []struct {
		name   string
		ident  Identity
		action Action
		res    Resource
		want   error
	}{
		{"admin creates book", admin, ActionCreateBook, Resource{}, nil},
		{"non-admin creates book", user, ActionCreateBook, Resource{}, ErrNotAdmin},
		{"owner updates review", user, ActionUpdateReview, Resource{OwnerID: 2}, nil},
		{"non-owner updates review", user, ActionUpdateReview, Resource{OwnerID: 3}, ErrNotOwner},
		{"admin is not owner", admin, ActionUpdateReview, Resource{OwnerID: 2}, ErrNotOwner},
		{"owner deletes review", user, ActionDeleteReview, Resource{OwnerID: 2}, nil},
		{"non-owner deletes review", user, ActionDeleteReview, Resource{OwnerID: 3}, ErrNotOwner},
		{"admin deletes other's review", admin, ActionDeleteReview, Resource{OwnerID: 2}, ErrNotOwner},
		{"owner updates profile", user, ActionUpdateProfile, Resource{OwnerID: 2}, nil},
		{"non-owner updates profile", user, ActionUpdateProfile, Resource{OwnerID: 3}, ErrNotOwner},
		{"anyone creates review", user, ActionCreateReview, Resource{}, nil},
		{"unknown action denied", user, Action("dropTables"), Resource{OwnerID: 2}, ErrNotOwner},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.ident, tc.action, tc.res)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}
