package weenect

import (
	"context"

	"github.com/pkg/errors"

	"github.com/weenect-community/weenect-go/internal/types"
)

// userService implements the UserService interface
type userService struct {
	client *Client
}

// Get retrieves the user information. An empty userID resolves to the
// authenticated user.
func (s *userService) Get(ctx context.Context, userID string) (map[string]interface{}, error) {
	path := "myuser"
	if userID != "" {
		path = "user/" + userID
	}

	resp, err := s.client.do(ctx, &types.Request{Path: path})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return toObject(resp)
}
