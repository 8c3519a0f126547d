package credentials

import (
	"errors"
	"fmt"
)

// Field identifies one of the four lines of a profile block.
type Field int

const (
	FieldHeader Field = iota
	FieldAccessKey
	FieldSecretKey
	FieldSessionToken
)

func (f Field) String() string {
	switch f {
	case FieldHeader:
		return "profile header"
	case FieldAccessKey:
		return "access key"
	case FieldSecretKey:
		return "secret key"
	case FieldSessionToken:
		return "session token"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

var (
	ErrInvalidHeader       = errors.New("invalid profile header")
	ErrInvalidAccessKey    = errors.New("invalid access key line")
	ErrInvalidSecretKey    = errors.New("invalid secret key line")
	ErrInvalidSessionToken = errors.New("invalid session token line")

	// ErrStructure is matched by every *StructureError.
	ErrStructure = errors.New("credentials file structure")
	// ErrIO is matched by every *IOError.
	ErrIO = errors.New("credentials file I/O")
	// ErrMismatch is returned by Verify when the SDK reads back different values.
	ErrMismatch = errors.New("credentials read back do not match")
)

var fieldErrors = map[Field]error{
	FieldHeader:       ErrInvalidHeader,
	FieldAccessKey:    ErrInvalidAccessKey,
	FieldSecretKey:    ErrInvalidSecretKey,
	FieldSessionToken: ErrInvalidSessionToken,
}

var fieldExpectations = map[Field]string{
	FieldHeader:       "'[' + 12 digits + at least 6 letters, digits, '-' or '_' + ']'",
	FieldAccessKey:    "aws_access_key_id= followed by 20 upper case letters or digits",
	FieldSecretKey:    "aws_secret_access_key= followed by 40 characters other than '='",
	FieldSessionToken: "aws_session_token= followed by at least 892 characters other than '='",
}

// ValidationError reports a line that does not match its required pattern.
// The offending value is never included in the message.
type ValidationError struct {
	Field Field
	// Existing is set when the line came from the credentials file rather than input.
	Existing bool
	// Line is the 1-based line number in the credentials file when Existing is set.
	Line int
}

func (e *ValidationError) Error() string {
	if e.Existing {
		return fmt.Sprintf("existing %s on line %d of the credentials file does not match: expected %s",
			e.Field, e.Line, fieldExpectations[e.Field])
	}
	return fmt.Sprintf("%s: expected %s", fieldErrors[e.Field], fieldExpectations[e.Field])
}

// Is matches the per-field sentinel errors.
func (e *ValidationError) Is(target error) bool {
	return fieldErrors[e.Field] == target
}

// StructureError reports a credentials file whose layout cannot be updated in place.
type StructureError struct {
	Header string
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("profile %s: %s", e.Header, e.Reason)
}

func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}

// IOError wraps a filesystem failure on the credentials file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
