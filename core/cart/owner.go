package cart

import (
	"context"
	"fmt"

	"github.com/alexedwards/scs/v2"
	"github.com/irsalhamdi/harmoni-music/core/claims"
	"github.com/irsalhamdi/harmoni-music/random"
)

const guestKey = "guest_id"

// Owner names the cart of the caller: the user for an authenticated caller,
// or a random guest id kept in the session otherwise.
func Owner(ctx context.Context, sess *scs.SessionManager) (string, error) {
	if c := claims.Current(ctx); c.Authenticated() {
		return UserOwner(c.UserID), nil
	}

	id := sess.GetString(ctx, guestKey)
	if id == "" {
		var err error
		if id, err = random.StringSecure(32); err != nil {
			return "", fmt.Errorf("generating guest id: %w", err)
		}
		sess.Put(ctx, guestKey, id)
	}
	return "guest:" + id, nil
}

func UserOwner(id int64) string {
	return fmt.Sprintf("user:%d", id)
}
