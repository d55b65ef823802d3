package entities

import (
	"encoding/json"
	"errors"
	"strconv"
)

var (
	ErrIdentityAssigned   = errors.New("identity already assigned")
	ErrIdentityUnassigned = errors.New("identity not assigned")
	ErrInvalidIdentity    = errors.New("identity must be a positive integer")
)

// Identity is the store-assigned key of a book. The zero value is
// Unassigned; the only way to obtain an assigned identity is through
// Assigned or Book.AssignIdentity.
type Identity struct {
	value    uint
	assigned bool
}

func Unassigned() Identity {
	return Identity{}
}

// Assigned wraps a store-issued id. Zero is not a valid id and yields Unassigned.
func Assigned(id uint) Identity {
	if id == 0 {
		return Identity{}
	}
	return Identity{value: id, assigned: true}
}

// Value returns the id and whether one has been assigned.
func (i Identity) Value() (uint, bool) {
	return i.value, i.assigned
}

func (i Identity) IsAssigned() bool {
	return i.assigned
}

func (i Identity) String() string {
	if !i.assigned {
		return "unassigned"
	}
	return strconv.FormatUint(uint64(i.value), 10)
}

func (i Identity) MarshalJSON() ([]byte, error) {
	if !i.assigned {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatUint(uint64(i.value), 10)), nil
}

func (i *Identity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*i = Unassigned()
		return nil
	}
	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	if id == 0 {
		return ErrInvalidIdentity
	}
	*i = Assigned(id)
	return nil
}

// MarshalYAML renders an unassigned identity as null.
func (i Identity) MarshalYAML() (any, error) {
	if !i.assigned {
		return nil, nil
	}
	return i.value, nil
}
