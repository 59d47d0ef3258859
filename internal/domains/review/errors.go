package review

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")

	// Reference failures are invalid input, not missing resources: the
	// review itself is what the caller is creating.
	ErrMovieNotFound = errors.New("referenced movie does not exist")
	ErrUserNotFound  = errors.New("referenced user does not exist")
)
