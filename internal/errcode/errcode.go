// Package errcode defines the business error taxonomy shared by every
// endpoint. Business failures keep HTTP 200 and surface one of these codes
// in the response envelope instead.
package errcode

import "fmt"

// Code pairs a stable numeric identifier with its default message.
type Code struct {
	Code    int
	Message string
}

var (
	Success          = Code{200, "Success"}
	BadRequest       = Code{400, "Bad Request"}
	Unauthorized     = Code{401, "Unauthorized"}
	Forbidden        = Code{403, "Forbidden"}
	NotFound         = Code{404, "Resource Not Found"}
	MethodNotAllowed = Code{405, "Method Not Allowed"}
	Conflict         = Code{409, "Resource Conflict"}
	Internal         = Code{500, "Internal Server Error"}

	// User errors (1000-1099)
	UserNotFound       = Code{1000, "User Not Found"}
	UserAlreadyExists  = Code{1001, "User Already Exists"}
	InvalidCredentials = Code{1002, "Invalid Username or Password"}
	UsernameExists     = Code{1003, "Username Already Exists"}
	EmailExists        = Code{1004, "Email Already Exists"}

	// Auth errors (1100-1199)
	TokenExpired     = Code{1100, "Token Expired"}
	TokenInvalid     = Code{1101, "Token Invalid"}
	TokenBlacklisted = Code{1102, "Token Blacklisted"}

	// Post errors (2000-2099)
	PostNotFound    = Code{2000, "Post Not Found"}
	PostTitleExists = Code{2001, "Post Title Already Exists"}
	PostSlugExists  = Code{2002, "Post Slug Already Exists"}

	// Category errors (3000-3099)
	CategoryNotFound   = Code{3000, "Category Not Found"}
	CategoryNameExists = Code{3001, "Category Name Already Exists"}
	CategoryHasPosts   = Code{3002, "Cannot Delete Category With Posts"}

	// Tag errors (4000-4099)
	TagNotFound   = Code{4000, "Tag Not Found"}
	TagNameExists = Code{4001, "Tag Name Already Exists"}

	// Media errors (5000-5099)
	MediaNotFound      = Code{5000, "Media Not Found"}
	FileUploadFailed   = Code{5001, "File Upload Failed"}
	FileTypeNotAllowed = Code{5002, "File Type Not Allowed"}
	FileSizeExceeded   = Code{5003, "File Size Exceeded"}

	// FriendLink errors (6000-6099)
	FriendLinkNotFound = Code{6000, "Friend Link Not Found"}
	FriendLinkExists   = Code{6001, "Friend Link Already Exists"}

	// Config errors (7000-7099)
	ConfigNotFound = Code{7000, "Config Not Found"}
)

// Error is the single business error type raised by the service layer and
// translated centrally into the response envelope.
type Error struct {
	Code    Code
	Message string // overrides Code.Message when set
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("[%d] %s", e.Code.Code, e.Message)
	}
	return fmt.Sprintf("[%d] %s", e.Code.Code, e.Code.Message)
}

// New raises a business error with the code's default message.
func New(code Code) *Error {
	return &Error{Code: code}
}

// Newf raises a business error with a custom message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Text returns the effective message for the error.
func (e *Error) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code.Message
}
