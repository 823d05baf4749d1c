package errs

import "fmt"

// NoRecordFound - Custom error to inform that no record was found for a key
type NoRecordFound struct {
	msg string
}

// NewNoRecordFound - Returns a NoRecordFound error carrying a message
func NewNoRecordFound(format string, args ...interface{}) NoRecordFound {
	return NoRecordFound{msg: fmt.Sprintf(format, args...)}
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Matches any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// IndexOutOfBounds - Custom error to inform that an index is at or beyond the number of live elements
type IndexOutOfBounds struct {
	msg string
}

// NewIndexOutOfBounds - Returns an IndexOutOfBounds error for index given length
func NewIndexOutOfBounds(index, length int) IndexOutOfBounds {
	return IndexOutOfBounds{msg: fmt.Sprintf("index %d out of bounds for length %d", index, length)}
}

// Error - Used to notify that an index is out of bounds
func (E IndexOutOfBounds) Error() string {
	if E.msg == "" {
		return "index out of bounds"
	}
	return E.msg
}

// Is - Matches any IndexOutOfBounds regardless of message
func (E IndexOutOfBounds) Is(target error) bool {
	_, ok := target.(IndexOutOfBounds)
	return ok
}

// EmptyContainer - Custom error to inform that an operation needs at least one element
type EmptyContainer struct {
	msg string
}

// NewEmptyContainer - Returns an EmptyContainer error carrying a message
func NewEmptyContainer(format string, args ...interface{}) EmptyContainer {
	return EmptyContainer{msg: fmt.Sprintf(format, args...)}
}

// Error - Used to notify that the container is empty
func (E EmptyContainer) Error() string {
	if E.msg == "" {
		return "container is empty"
	}
	return E.msg
}

// Is - Matches any EmptyContainer regardless of message
func (E EmptyContainer) Is(target error) bool {
	_, ok := target.(EmptyContainer)
	return ok
}

// InvalidConfiguration - Custom error to inform that a container can not be created with the given configuration
type InvalidConfiguration struct {
	msg string
}

// NewInvalidConfiguration - Returns an InvalidConfiguration error carrying a message
func NewInvalidConfiguration(format string, args ...interface{}) InvalidConfiguration {
	return InvalidConfiguration{msg: fmt.Sprintf(format, args...)}
}

// Error - Used to notify an invalid configuration
func (E InvalidConfiguration) Error() string {
	if E.msg == "" {
		return "invalid configuration"
	}
	return E.msg
}

// Is - Matches any InvalidConfiguration regardless of message
func (E InvalidConfiguration) Is(target error) bool {
	_, ok := target.(InvalidConfiguration)
	return ok
}

// InvalidNumber - Custom error to inform that a byte span does not hold a number
type InvalidNumber struct {
	msg string
}

// NewInvalidNumber - Returns an InvalidNumber error for the offending text
func NewInvalidNumber(text string) InvalidNumber {
	return InvalidNumber{msg: fmt.Sprintf("%q is not a valid number", text)}
}

// Error - Used to notify that a text is not a number
func (E InvalidNumber) Error() string {
	if E.msg == "" {
		return "invalid number"
	}
	return E.msg
}

// Is - Matches any InvalidNumber regardless of message
func (E InvalidNumber) Is(target error) bool {
	_, ok := target.(InvalidNumber)
	return ok
}
