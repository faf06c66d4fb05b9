package customer

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const minDocumentNumLength = 11

var birthDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Customer is an immutable, validated record. Instances are only produced by
// New (or Apply, which copies); they are never mutated in place.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DocumentNum  string    `json:"documentNum"`
	DateBirthday time.Time `json:"dateBirthday"`
	Email        string    `json:"email"`
}

// ValidationError reports a construction invariant violation. Its message is
// surfaced verbatim to callers.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IDGenerator supplies identifiers for customers created without one.
type IDGenerator func() string

func UUIDGenerator() string {
	return uuid.NewString()
}

// Params carries raw construction input. Name, DocumentNum, Email and
// DateBirthday are loosely typed because they arrive from transport payloads;
// New is the sole authority on their validity.
type Params struct {
	ID           string
	Name         any
	DocumentNum  any
	DateBirthday any
	Email        any
}

// New validates params and returns a fully constructed Customer, or a
// *ValidationError. Checks run in a fixed order so the reported message is
// deterministic: types, emptiness, document length, date format/type, date
// sanity.
func New(p Params) (*Customer, error) {
	return NewWithGenerator(p, UUIDGenerator)
}

// NewWithGenerator is New with an injected id generator, so construction is
// deterministic under test.
func NewWithGenerator(p Params, generate IDGenerator) (*Customer, error) {
	name, nameOK := p.Name.(string)
	documentNum, docOK := p.DocumentNum.(string)
	email, emailOK := p.Email.(string)
	if !nameOK || !docOK || !emailOK {
		return nil, &ValidationError{Message: "Name, document number, and email must be strings"}
	}

	name = strings.TrimSpace(name)
	documentNum = strings.TrimSpace(documentNum)
	email = strings.TrimSpace(email)
	if name == "" || documentNum == "" || email == "" {
		return nil, &ValidationError{Message: "All fields must be filled"}
	}

	if len(documentNum) < minDocumentNumLength {
		return nil, &ValidationError{Message: "Document number must be at least 11 characters long"}
	}

	var dateBirthday time.Time
	switch d := p.DateBirthday.(type) {
	case string:
		parsed, err := parseBirthDate(d)
		if err != nil {
			return nil, &ValidationError{Message: "Invalid date format or value. Use YYYY-MM-DD and ensure it's a valid date."}
		}
		dateBirthday = parsed
	case time.Time:
		dateBirthday = d
	default:
		return nil, &ValidationError{Message: "Invalid date type"}
	}

	if dateBirthday.IsZero() || dateBirthday.After(time.Now()) {
		return nil, &ValidationError{Message: "Invalid birth date"}
	}

	id := p.ID
	if id == "" {
		id = generate()
	}

	return &Customer{
		ID:           id,
		Name:         name,
		DocumentNum:  documentNum,
		DateBirthday: dateBirthday,
		Email:        email,
	}, nil
}

// parseBirthDate accepts strict YYYY-MM-DD only. time.Parse already rejects
// impossible dates such as 2001-02-29, the pattern rejects loose shapes such
// as 2001-2-9 that time.Parse would otherwise accept.
func parseBirthDate(s string) (time.Time, error) {
	if !birthDatePattern.MatchString(s) {
		return time.Time{}, &ValidationError{Message: "invalid date shape"}
	}
	return time.Parse("2006-01-02", s)
}

// Update is a partial-field patch. Nil pointers mean "leave unchanged".
type Update struct {
	Name         *string    `json:"name,omitempty"`
	DocumentNum  *string    `json:"documentNum,omitempty"`
	DateBirthday *time.Time `json:"dateBirthday,omitempty"`
	Email        *string    `json:"email,omitempty"`
}

func (u Update) IsEmpty() bool {
	return u.Name == nil && u.DocumentNum == nil && u.DateBirthday == nil && u.Email == nil
}

// Apply returns a new Customer with the patch applied. The receiver is left
// untouched.
func (c *Customer) Apply(u Update) *Customer {
	next := *c
	if u.Name != nil {
		next.Name = *u.Name
	}
	if u.DocumentNum != nil {
		next.DocumentNum = *u.DocumentNum
	}
	if u.DateBirthday != nil {
		next.DateBirthday = *u.DateBirthday
	}
	if u.Email != nil {
		next.Email = *u.Email
	}
	return &next
}
